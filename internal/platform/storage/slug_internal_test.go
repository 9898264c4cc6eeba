package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitDealSlug(t *testing.T) {
	testCases := map[string]struct {
		title    string
		wantBase string
	}{
		"lowercases and dashes": {
			title:    "Winter Jacket 50% OFF!",
			wantBase: "winter-jacket-50-off",
		},
		"collapses repeated separators": {
			title:    "Shoes -- Size 42 / Blue",
			wantBase: "shoes-size-42-blue",
		},
		"cuts long titles at 50 characters": {
			title:    strings.Repeat("abcde ", 20),
			wantBase: strings.Repeat("abcde-", 9)[:50],
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			slug := dealSlug(tc.title)

			assert.True(t, strings.HasPrefix(slug, tc.wantBase+"-"), "slug %q should start with %q", slug, tc.wantBase)
			assert.Len(t, slug, len(tc.wantBase)+9, "slug should end with 8 hex characters")
		})
	}

	t.Run("equal titles produce different slugs", func(t *testing.T) {
		assert.NotEqual(t, dealSlug("Same Title"), dealSlug("Same Title"))
	})
}

func TestUnitStoreSlug(t *testing.T) {
	testCases := map[string]struct {
		name string
		want string
	}{
		"lowercases":    {name: "SportShop", want: "sportshop"},
		"spaces":        {name: "Tech World Store", want: "tech-world-store"},
		"dots removed":  {name: "shop.example.com", want: "shopexamplecom"},
		"deterministic": {name: "Amazon", want: "amazon"},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, storeSlug(tc.name))
		})
	}
}
