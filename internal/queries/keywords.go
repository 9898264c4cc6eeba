package queries

import (
	"strings"
	"unicode/utf8"
)

// stopWords are never used as trending keywords.
var stopWords = map[string]struct{}{
	"ve": {}, "ile": {}, "için": {},
	"the": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
}

const (
	// minKeywordRunes is the exclusive lower bound on keyword length.
	minKeywordRunes = 3

	surroundingPunctuation = ".,!?()[]{}"
)

// ExtractKeywords mines search keywords from deal titles. Words are
// stripped of surrounding punctuation and lowercased; stopwords and words
// of 3 runes or fewer are dropped. Keywords keep first-seen order and the
// result holds at most limit entries.
func ExtractKeywords(titles []string, limit int) []string {
	keywords := make([]string, 0, limit)
	seen := make(map[string]struct{})

	for _, title := range titles {
		for _, word := range strings.Fields(title) {
			keyword := strings.ToLower(strings.Trim(word, surroundingPunctuation))
			if utf8.RuneCountInString(keyword) <= minKeywordRunes {
				continue
			}
			if _, ok := stopWords[keyword]; ok {
				continue
			}
			if _, ok := seen[keyword]; ok {
				continue
			}

			seen[keyword] = struct{}{}
			keywords = append(keywords, keyword)
			if len(keywords) == limit {
				return keywords
			}
		}
	}

	return keywords
}
