// Package history keeps the most recent evaluations with their passwords
// masked. Nothing in here ever sees an unmasked password once NewEntry has
// returned.
package history

import (
	"context"
	"strings"
	"unicode/utf8"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/strength"
)

// MaxEntries is how many evaluations a store keeps.
const MaxEntries = 10

type Entry struct {
	strength.Result

	Breach *breach.Status `json:"breach,omitempty"`

	// Timestamp is in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}

//go:generate counterfeiter . Store

type Store interface {
	Save(ctx context.Context, logger lager.Logger, entry Entry) error
	// List returns entries most recent first.
	List(ctx context.Context, logger lager.Logger) ([]Entry, error)
	Clear(ctx context.Context, logger lager.Logger) error
}

func NewEntry(clk clock.Clock, result strength.Result, status *breach.Status) Entry {
	result.Password = Mask(result.Password)

	return Entry{
		Result:    result,
		Breach:    status,
		Timestamp: clk.Now().UnixNano() / 1e6,
	}
}

// Mask hides all but the last two characters of password.
func Mask(password string) string {
	n := utf8.RuneCountInString(password)
	if n <= 2 {
		return strings.Repeat("*", n)
	}

	runes := []rune(password)
	return strings.Repeat("*", n-2) + string(runes[n-2:])
}
