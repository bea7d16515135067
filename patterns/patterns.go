package patterns

import (
	"strings"

	"github.com/pivotal-cf/pass-alert/matchers"
	"github.com/pivotal-cf/pass-alert/tables"
)

type Type string

const (
	Repeat       Type = "repeat"
	Sequence     Type = "sequence"
	Keyboard     Type = "keyboard"
	Dictionary   Type = "dictionary"
	WeakPassword Type = "weak-password"
)

const (
	longRepeatDetails  = "Contains long repeated characters"
	groupRepeatDetails = "Has repeated character groups"
	sequenceDetails    = "Contains sequential patterns"
	keyboardDetails    = "Keyboard pattern like "
)

type Match struct {
	Type    Type   `json:"type"`
	Details string `json:"details"`
}

type keyboardRow struct {
	row     string
	matcher matchers.Matcher
}

// Detector flags structural weaknesses in a password. A Detector holds no
// per-call state and may be shared.
type Detector struct {
	longRepeat  matchers.Matcher
	groupRepeat matchers.Matcher
	sequence    matchers.Matcher
	keyboard    []keyboardRow
}

func NewDetector(t tables.Tables) *Detector {
	sequences := make([]matchers.Matcher, 0, len(t.Sequences))
	for _, s := range t.Sequences {
		if s == "" {
			continue
		}
		sequences = append(sequences, matchers.Substring(strings.ToLower(s)))
	}

	rows := make([]keyboardRow, 0, len(t.KeyboardRows))
	for _, row := range t.KeyboardRows {
		row = strings.ToLower(row)
		windows := keyboardWindows(row)
		if len(windows) == 0 {
			continue
		}

		rows = append(rows, keyboardRow{
			row:     row,
			matcher: matchers.LowercasedMulti(windows...),
		})
	}

	return &Detector{
		longRepeat:  matchers.Whole(matchers.Run(4)),
		groupRepeat: matchers.Run(3),
		sequence:    matchers.LowercasedMulti(sequences...),
		keyboard:    rows,
	}
}

// Detect runs every check against password. Matches come back in check
// order and hold at most one keyboard match.
func (d *Detector) Detect(password string) []Match {
	var found []Match

	if matches(d.longRepeat, password) {
		found = append(found, Match{Type: Repeat, Details: longRepeatDetails})
	}

	if matches(d.groupRepeat, password) {
		found = append(found, Match{Type: Repeat, Details: groupRepeatDetails})
	}

	if matches(d.sequence, password) {
		found = append(found, Match{Type: Sequence, Details: sequenceDetails})
	}

	for _, kr := range d.keyboard {
		if matches(kr.matcher, password) {
			found = append(found, Match{Type: Keyboard, Details: keyboardDetails + kr.row})
			break
		}
	}

	return found
}

// Has reports whether any match in ms is of type t.
func Has(ms []Match, t Type) bool {
	for _, m := range ms {
		if m.Type == t {
			return true
		}
	}

	return false
}

func keyboardWindows(row string) []matchers.Matcher {
	runes := []rune(row)

	var windows []matchers.Matcher
	for i := 0; i+tables.KeyboardWindow <= len(runes); i++ {
		windows = append(windows, matchers.Substring(string(runes[i:i+tables.KeyboardWindow])))
	}

	return windows
}

func matches(m matchers.Matcher, s string) bool {
	found, _, _ := m.Match(s)
	return found
}
