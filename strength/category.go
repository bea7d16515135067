package strength

import "fmt"

type Category int

const (
	VeryWeak Category = iota
	Weak
	Medium
	Strong
	VeryStrong
)

var categoryNames = []string{
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Medium:     "Medium",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

// CategoryFor maps a score to its label. Each bound is inclusive.
func CategoryFor(score int) Category {
	switch {
	case score <= 20:
		return VeryWeak
	case score <= 40:
		return Weak
	case score <= 60:
		return Medium
	case score <= 80:
		return Strong
	default:
		return VeryStrong
	}
}

func (c Category) String() string {
	if c < VeryWeak || c > VeryStrong {
		return fmt.Sprintf("Category(%d)", int(c))
	}

	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if c < VeryWeak || c > VeryStrong {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}

	return []byte(categoryNames[c]), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}

	return fmt.Errorf("unknown category %q", text)
}
