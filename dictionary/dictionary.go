package dictionary

import (
	"strings"

	"github.com/pivotal-cf/pass-alert/leet"
	"github.com/pivotal-cf/pass-alert/matchers"
)

type entry struct {
	word string

	// matches the lowercased password
	plain matchers.Matcher
	// matches the leet-normalized password
	leet matchers.Matcher
}

// Matcher finds known weak words in passwords, forwards, reversed, or
// hidden behind leet-speak substitutions.
type Matcher struct {
	entries    []entry
	common     map[string]bool
	normalizer *leet.Normalizer
}

func NewMatcher(words []string, normalizer *leet.Normalizer) *Matcher {
	m := &Matcher{
		common:     make(map[string]bool, len(words)),
		normalizer: normalizer,
	}

	for _, word := range words {
		word = strings.ToLower(word)
		if word == "" || m.common[word] {
			continue
		}

		m.common[word] = true
		m.entries = append(m.entries, entry{
			word:  word,
			plain: matchers.Multi(matchers.Substring(word), matchers.Substring(reverse(word))),
			leet:  matchers.Substring(word),
		})
	}

	return m
}

// Detect returns the words found in password, in word-list order.
func (m *Matcher) Detect(password string) []string {
	lower := strings.ToLower(password)
	normalized := m.normalizer.Normalize(password)

	var words []string
	for _, e := range m.entries {
		if found, _, _ := e.plain.Match(lower); found {
			words = append(words, e.word)
			continue
		}

		if found, _, _ := e.leet.Match(normalized); found {
			words = append(words, e.word)
		}
	}

	return words
}

// IsCommon reports whether password is, ignoring case, exactly one of the
// listed words.
func (m *Matcher) IsCommon(password string) bool {
	return m.common[strings.ToLower(password)]
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
