package storage

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const maxSlugBaseLength = 50

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// dealSlug builds a unique URL slug from a deal title. The base is cut at
// 50 characters and suffixed with 8 random hex characters, so equal titles
// never collide.
func dealSlug(title string) string {
	base := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	base = strings.Trim(base, "-")
	if len(base) > maxSlugBaseLength {
		base = base[:maxSlugBaseLength]
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return base + "-" + suffix
}

// storeSlug builds a stable slug from a store name, so the same store
// always maps to the same record.
func storeSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, ".", "")

	return slug
}
