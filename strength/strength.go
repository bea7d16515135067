// Package strength combines the entropy, pattern and dictionary analyzers
// into a single bounded score with a category, warnings and suggestions.
package strength

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/pivotal-cf/pass-alert/dictionary"
	"github.com/pivotal-cf/pass-alert/entropy"
	"github.com/pivotal-cf/pass-alert/leet"
	"github.com/pivotal-cf/pass-alert/matchers"
	"github.com/pivotal-cf/pass-alert/patterns"
	"github.com/pivotal-cf/pass-alert/suggestions"
	"github.com/pivotal-cf/pass-alert/tables"
)

const (
	MinScore = 0
	MaxScore = 100

	// MinLength is the length below which a password is called too short.
	MinLength = 8

	varietyBonus    = 5
	maxVarietyBonus = 25
	maxEntropyBonus = 25

	patternPenalty    = 10
	dictionaryPenalty = 15
	commonPenalty     = 25
	shortPenalty      = 20
)

const (
	dictionaryWarning = "Contains dictionary word: "
	commonWarning     = "Matches a known weak password."
	shortWarning      = "Too short; use at least 12 characters."
)

type Result struct {
	Password    string           `json:"password"`
	Score       int              `json:"score"`
	Category    Category         `json:"category"`
	EntropyBits float64          `json:"entropyBits"`
	CrackTime   string           `json:"crackTime"`
	Warnings    []string         `json:"warnings"`
	Suggestions []string         `json:"suggestions"`
	Patterns    []patterns.Match `json:"patterns"`
}

// Evaluator scores passwords against one set of tables. It is immutable
// after construction and safe for concurrent use.
type Evaluator struct {
	estimator  *entropy.Estimator
	detector   *patterns.Detector
	dictionary *dictionary.Matcher

	variety []matchers.Matcher
}

func NewEvaluator(t tables.Tables) *Evaluator {
	return &Evaluator{
		estimator:  entropy.NewEstimator(t.CommonSymbols, t.UncommonSymbols),
		detector:   patterns.NewDetector(t),
		dictionary: dictionary.NewMatcher(t.Words, leet.NewNormalizer(t.LeetRunes())),
		variety: []matchers.Matcher{
			matchers.Format(`[a-z]`),
			matchers.Format(`[A-Z]`),
			matchers.Format(`[0-9]`),
			matchers.Format(`[^\w\s\p{Zs}]`),
			matchers.AnyOf(t.UncommonSymbols),
		},
	}
}

var defaultEvaluator = NewEvaluator(tables.Default())

// Evaluate scores password against the default tables.
func Evaluate(password string) Result {
	return defaultEvaluator.Evaluate(password)
}

func (e *Evaluator) Evaluate(password string) Result {
	length := utf8.RuneCountInString(password)
	estimate := e.estimator.Estimate(password)
	found := e.detector.Detect(password)
	words := e.dictionary.Detect(password)
	common := e.dictionary.IsCommon(password)

	score := lengthBonus(length) + e.varietyBonus(password) + entropyBonus(estimate.Bits)

	warnings := make([]string, 0, len(found)+3)
	for _, m := range found {
		warnings = append(warnings, m.Details)
		score -= patternPenalty
	}

	if len(words) > 0 {
		warnings = append(warnings, dictionaryWarning+strings.Join(words, ", "))
		score -= dictionaryPenalty
	}

	if common {
		warnings = append(warnings, commonWarning)
		score -= commonPenalty
	}

	if length < MinLength {
		warnings = append(warnings, shortWarning)
		score -= shortPenalty
	}

	score = clamp(score)

	if found == nil {
		found = []patterns.Match{}
	}

	return Result{
		Password:    password,
		Score:       score,
		Category:    CategoryFor(score),
		EntropyBits: math.Round(estimate.Bits*10) / 10,
		CrackTime:   estimate.CrackTime,
		Warnings:    suggestions.Dedupe(warnings),
		Suggestions: suggestions.Suggest(suggestions.Findings{
			Length:         length,
			Profile:        e.estimator.Profile(password),
			Patterns:       found,
			DictionaryHits: words,
			Common:         common,
		}),
		Patterns: found,
	}
}

func lengthBonus(length int) int {
	switch {
	case length >= 16:
		return 30
	case length >= 12:
		return 20
	case length >= MinLength:
		return 10
	default:
		return 0
	}
}

// varietyBonus counts symbols twice when they are also uncommon symbols.
func (e *Evaluator) varietyBonus(password string) int {
	bonus := 0
	for _, m := range e.variety {
		if found, _, _ := m.Match(password); found {
			bonus += varietyBonus
		}
	}

	if bonus > maxVarietyBonus {
		bonus = maxVarietyBonus
	}

	return bonus
}

func entropyBonus(bits float64) int {
	bonus := int(math.Round(bits / 3))
	if bonus > maxEntropyBonus {
		bonus = maxEntropyBonus
	}

	return bonus
}

func clamp(score int) int {
	if score < MinScore {
		return MinScore
	}

	if score > MaxScore {
		return MaxScore
	}

	return score
}
