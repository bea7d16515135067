package strength_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pass-alert/strength"
)

var _ = Describe("Category", func() {
	DescribeTable("CategoryFor",
		func(score int, expected strength.Category) {
			Expect(strength.CategoryFor(score)).To(Equal(expected))
		},
		Entry("zero", 0, strength.VeryWeak),
		Entry("20", 20, strength.VeryWeak),
		Entry("21", 21, strength.Weak),
		Entry("40", 40, strength.Weak),
		Entry("41", 41, strength.Medium),
		Entry("60", 60, strength.Medium),
		Entry("61", 61, strength.Strong),
		Entry("80", 80, strength.Strong),
		Entry("81", 81, strength.VeryStrong),
		Entry("100", 100, strength.VeryStrong),
	)

	It("is ordered from weakest to strongest", func() {
		Expect(strength.VeryWeak < strength.Weak).To(BeTrue())
		Expect(strength.Weak < strength.Medium).To(BeTrue())
		Expect(strength.Medium < strength.Strong).To(BeTrue())
		Expect(strength.Strong < strength.VeryStrong).To(BeTrue())
	})

	It("has a human readable name", func() {
		Expect(strength.VeryWeak.String()).To(Equal("Very Weak"))
		Expect(strength.VeryStrong.String()).To(Equal("Very Strong"))
		Expect(strength.Category(42).String()).To(Equal("Category(42)"))
	})

	It("round-trips through JSON as its name", func() {
		bs, err := json.Marshal(strength.Medium)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(bs)).To(Equal(`"Medium"`))

		var c strength.Category
		Expect(json.Unmarshal([]byte(`"Very Strong"`), &c)).To(Succeed())
		Expect(c).To(Equal(strength.VeryStrong))
	})

	It("rejects unknown names", func() {
		var c strength.Category
		Expect(json.Unmarshal([]byte(`"Meh"`), &c)).To(MatchError(ContainSubstring("unknown category")))
	})

	It("refuses to marshal an out-of-range category", func() {
		_, err := json.Marshal(strength.Category(-1))
		Expect(err).To(HaveOccurred())
	})
})
