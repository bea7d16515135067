package entropy

import (
	"math"
	"unicode/utf8"

	"github.com/pivotal-cf/pass-alert/matchers"
)

// GuessesPerSecond is the offline attacker throughput crack times assume.
const GuessesPerSecond = 1e10

const (
	lowerSize = 26
	upperSize = 26
	digitSize = 10
)

// Profile records which character classes appear in a password.
type Profile struct {
	Lower          bool
	Upper          bool
	Digit          bool
	CommonSymbol   bool
	UncommonSymbol bool

	// Size is the combined alphabet size of the classes present, at least 1.
	Size int
}

func (p Profile) HasSymbol() bool {
	return p.CommonSymbol || p.UncommonSymbol
}

type Estimate struct {
	Bits             float64
	CharsetSize      int
	CrackTimeSeconds float64
	CrackTime        string
}

type Estimator struct {
	lower    matchers.Matcher
	upper    matchers.Matcher
	digit    matchers.Matcher
	common   matchers.Matcher
	uncommon matchers.Matcher

	commonSize   int
	uncommonSize int
}

func NewEstimator(commonSymbols, uncommonSymbols string) *Estimator {
	return &Estimator{
		lower:        matchers.Format(`[a-z]`),
		upper:        matchers.Format(`[A-Z]`),
		digit:        matchers.Format(`[0-9]`),
		common:       matchers.AnyOf(commonSymbols),
		uncommon:     matchers.AnyOf(uncommonSymbols),
		commonSize:   utf8.RuneCountInString(commonSymbols),
		uncommonSize: utf8.RuneCountInString(uncommonSymbols),
	}
}

func (e *Estimator) Profile(password string) Profile {
	p := Profile{
		Lower:          matches(e.lower, password),
		Upper:          matches(e.upper, password),
		Digit:          matches(e.digit, password),
		CommonSymbol:   matches(e.common, password),
		UncommonSymbol: matches(e.uncommon, password),
	}

	if p.Lower {
		p.Size += lowerSize
	}
	if p.Upper {
		p.Size += upperSize
	}
	if p.Digit {
		p.Size += digitSize
	}
	if p.CommonSymbol {
		p.Size += e.commonSize
	}
	if p.UncommonSymbol {
		p.Size += e.uncommonSize
	}

	if p.Size < 1 {
		p.Size = 1
	}

	return p
}

// Estimate treats every character as drawn independently from the whole
// detected alphabet, so Bits is an upper bound.
func (e *Estimator) Estimate(password string) Estimate {
	size := e.Profile(password).Size
	bits := float64(utf8.RuneCountInString(password)) * math.Log2(float64(size))
	seconds := math.Pow(2, bits) / GuessesPerSecond

	return Estimate{
		Bits:             bits,
		CharsetSize:      size,
		CrackTimeSeconds: seconds,
		CrackTime:        FormatDuration(seconds),
	}
}

func matches(m matchers.Matcher, s string) bool {
	found, _, _ := m.Match(s)
	return found
}
