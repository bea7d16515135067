package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-alert/matchers"
)

var _ = Describe("AnyOf", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		matcher = matchers.AnyOf("!§")
	})

	It("matches the first character from the set", func() {
		matched, start, end := matcher.Match("ab!c")
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(2))
		Expect(end).To(Equal(3))
	})

	It("covers the whole multi-byte rune", func() {
		matched, start, end := matcher.Match("a§")
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(1))
		Expect(end).To(Equal(3))
	})

	It("returns false when no character from the set is present", func() {
		matched, _, _ := matcher.Match("abc")
		Expect(matched).To(BeFalse())
	})
})
