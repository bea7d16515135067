package strength_test

import (
	"encoding/json"
	"strings"
	"sync"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-alert/patterns"
	"github.com/pivotal-cf/pass-alert/strength"
	"github.com/pivotal-cf/pass-alert/tables"
)

var _ = Describe("Evaluate", func() {
	It("rates the empty password as very weak", func() {
		Expect(strength.Evaluate("")).To(Equal(strength.Result{
			Password:    "",
			Score:       0,
			Category:    strength.VeryWeak,
			EntropyBits: 0,
			CrackTime:   "<1 second",
			Warnings:    []string{"Too short; use at least 12 characters."},
			Suggestions: []string{
				"Increase length to at least 12 characters.",
				"Add lowercase letters.",
				"Add uppercase letters.",
				"Add numbers.",
				"Include symbols to expand the character set.",
			},
			Patterns: []patterns.Match{},
		}))
	})

	It("explains everything wrong with password", func() {
		Expect(strength.Evaluate("password")).To(Equal(strength.Result{
			Password:    "password",
			Score:       0,
			Category:    strength.VeryWeak,
			EntropyBits: 37.6,
			CrackTime:   "20.9 seconds",
			Warnings: []string{
				"Keyboard pattern like password",
				"Contains dictionary word: password",
				"Matches a known weak password.",
			},
			Suggestions: []string{
				"Increase length to at least 12 characters.",
				"Add uppercase letters.",
				"Add numbers.",
				"Include symbols to expand the character set.",
				"Avoid keyboard patterns like qwerty.",
				"Remove dictionary words or replace them with unique phrases.",
				"Start from a unique passphrase, not a known weak password.",
			},
			Patterns: []patterns.Match{
				{Type: patterns.Keyboard, Details: "Keyboard pattern like password"},
			},
		}))
	})

	It("sees through leet substitutions", func() {
		result := strength.Evaluate("p@ssw0rd")
		Expect(result.Score).To(Equal(26))
		Expect(result.Category).To(Equal(strength.Weak))
		Expect(result.EntropyBits).To(Equal(48.2))
		Expect(result.CrackTime).To(Equal("8.9 hours"))
		Expect(result.Warnings).To(Equal([]string{"Contains dictionary word: password"}))
		Expect(result.Patterns).To(BeEmpty())
	})

	It("lists every dictionary word in one warning", func() {
		result := strength.Evaluate("qwerty2024")
		Expect(result.Score).To(Equal(12))
		Expect(result.Warnings).To(Equal([]string{
			"Keyboard pattern like qwertyuiop",
			"Contains dictionary word: qwerty",
		}))

		Expect(strength.Evaluate("princessqwertyadmin").Warnings).To(ContainElement(
			"Contains dictionary word: qwerty, admin, princess",
		))
	})

	It("penalises the dictionary once however many words match", func() {
		one := strength.Evaluate("zq-Princess-7Rx!")
		two := strength.Evaluate("zq-Princess-Admin-7Rx!")
		Expect(one.Warnings).To(ContainElement("Contains dictionary word: princess"))
		Expect(two.Warnings).To(ContainElement("Contains dictionary word: admin, princess"))
		Expect(two.Score).To(BeNumerically(">=", one.Score))
	})

	It("counts two repeat matches as two penalties", func() {
		Expect(strength.Evaluate("zzzzzzzzzzzzzzzz").Score).To(Equal(40))
		Expect(strength.Evaluate("Zzzzzzzzzzzzzzzz").Score).To(Equal(55))
	})

	It("does not count case-changed runs as one whole-string repeat", func() {
		result := strength.Evaluate("aaaaAAAA")
		Expect(result.Score).To(Equal(25))
		Expect(result.Patterns).To(HaveLen(1))
	})

	DescribeTable("reference scores",
		func(password string, score int, category strength.Category, bits float64, crackTime string) {
			result := strength.Evaluate(password)
			Expect(result.Score).To(Equal(score))
			Expect(result.Category).To(Equal(category))
			Expect(result.EntropyBits).To(Equal(bits))
			Expect(result.CrackTime).To(Equal(crackTime))
		},
		Entry("common word plus digits", "mypassword123", 27, strength.Weak, 67.2, "548.4 years"),
		Entry("every ascii class", "abcABC123!@#", 65, strength.Strong, 78.1, "1036765.3 years"),
		Entry("mixed, ten characters", "abcABC123!", 52, strength.Medium, 65.1, "125.2 years"),
		Entry("classic substitution", "Tr0ub4dor&3", 54, strength.Medium, 71.6, "11393 years"),
		Entry("random twelve", "xK9#mP2vL!qz", 65, strength.Strong, 78.1, "1036765.3 years"),
		Entry("reversed word", "drowssap", 13, strength.VeryWeak, 37.6, "20.9 seconds"),
		Entry("season and year", "Summer2024", 45, strength.Medium, 59.5, "2.7 years"),
		Entry("uncommon symbol", "Str0ng¡Pass", 49, strength.Medium, 72.9, "28785.3 years"),
		Entry("upper edge of very weak", "Dragonxy", 20, strength.VeryWeak, 45.6, "1.5 hours"),
		Entry("lower edge of weak", "helloabcdw", 21, strength.Weak, 47.0, "3.9 hours"),
	)

	It("writes very long crack times in exponent form", func() {
		result := strength.Evaluate("correct-Horse-battery-9")
		Expect(result.Score).To(Equal(75))
		Expect(result.Category).To(Equal(strength.Strong))
		Expect(result.EntropyBits).To(Equal(149.7))
		Expect(result.CrackTime).To(MatchRegexp(`^3\.67\d*e\+27 years$`))
	})

	It("does not count unicode spaces as symbols", func() {
		withSpace := strength.Evaluate("abcdefg\u00a0")
		Expect(withSpace.Score).To(Equal(strength.Evaluate("abcdefgh").Score))
		Expect(withSpace.Score).To(Equal(18))
	})

	It("gives a sixteen character random password the top length bonus", func() {
		result := strength.Evaluate("Xk9$mP2!vLq7zR4w")
		Expect(result.Score).To(Equal(75))
		Expect(result.EntropyBits).To(Equal(104.1))
		Expect(result.CrackTime).To(MatchRegexp(`^7109614188\d{4}(\.\d)? years$`))
	})

	It("never leaves the score range", func() {
		for _, password := range []string{
			"", "a", "password", "aaaa", strings.Repeat("aA1!§", 40), "qwertyasdfzxcv1234",
		} {
			score := strength.Evaluate(password).Score
			Expect(score).To(BeNumerically(">=", strength.MinScore))
			Expect(score).To(BeNumerically("<=", strength.MaxScore))
		}
	})

	It("never repeats a warning or suggestion", func() {
		for _, password := range []string{"aaaa", "password", "1234qwer", "abcdabcd"} {
			result := strength.Evaluate(password)
			Expect(result.Warnings).To(HaveLen(len(uniq(result.Warnings))))
			Expect(result.Suggestions).To(HaveLen(len(uniq(result.Suggestions))))
		}
	})

	It("gives the same answer every time", func() {
		Expect(strength.Evaluate("Tr0ub4dor&3")).To(Equal(strength.Evaluate("Tr0ub4dor&3")))
	})

	It("has no suggestions for a long varied password", func() {
		result := strength.Evaluate("abcABC123!@#")
		Expect(result.Warnings).To(BeEmpty())
		Expect(result.Suggestions).To(BeEmpty())
	})

	It("serializes with camelCase keys and empty lists", func() {
		bs, err := json.Marshal(strength.Evaluate("abcABC123!@#"))
		Expect(err).NotTo(HaveOccurred())
		Expect(bs).To(MatchJSON(`{
			"password": "abcABC123!@#",
			"score": 65,
			"category": "Strong",
			"entropyBits": 78.1,
			"crackTime": "1036765.3 years",
			"warnings": [],
			"suggestions": [],
			"patterns": []
		}`))
	})

	It("is safe to call concurrently", func() {
		evaluator := strength.NewEvaluator(tables.Default())
		expected := evaluator.Evaluate("Summer2024")

		var wg sync.WaitGroup
		results := make([]strength.Result, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer GinkgoRecover()
				defer wg.Done()
				results[i] = evaluator.Evaluate("Summer2024")
			}(i)
		}
		wg.Wait()

		for _, r := range results {
			Expect(r).To(Equal(expected))
		}
	})
})

var _ = Describe("Evaluator", func() {
	It("scores against the tables it was built with", func() {
		t := tables.Default()
		t.Words = []string{"hunter"}

		result := strength.NewEvaluator(t).Evaluate("hunter")
		Expect(result.Warnings).To(ContainElement("Contains dictionary word: hunter"))
		Expect(result.Warnings).To(ContainElement("Matches a known weak password."))

		Expect(strength.Evaluate("hunter").Warnings).NotTo(ContainElement("Matches a known weak password."))
	})
})

func uniq(ss []string) map[string]bool {
	m := map[string]bool{}
	for _, s := range ss {
		m[s] = true
	}
	return m
}
