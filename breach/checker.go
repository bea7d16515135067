package breach

import (
	"context"
	"strconv"
	"strings"

	"code.cloudfoundry.org/lager"
)

// Status is the outcome of a breach lookup. It is kept apart from the
// strength result and only merged for display.
type Status struct {
	Checked bool `json:"checked"`
	Found   bool `json:"found"`
	Count   int  `json:"count,omitempty"`
}

type Checker struct {
	fetcher RangeFetcher
}

func NewChecker(fetcher RangeFetcher) *Checker {
	return &Checker{
		fetcher: fetcher,
	}
}

// Check looks password up by hash prefix. Only the prefix is sent; the
// suffix is matched locally.
func (c *Checker) Check(ctx context.Context, logger lager.Logger, password string) (Status, error) {
	logger = logger.Session("check-breach")

	prefix, suffix := Prefix(password)

	lines, err := c.fetcher.FetchRange(ctx, logger, prefix)
	if err != nil {
		logger.Error("failed", err)
		return Status{}, err
	}

	count, found := findSuffix(lines, suffix)
	logger.Info("done", lager.Data{
		"prefix": prefix,
		"found":  found,
	})

	return Status{
		Checked: true,
		Found:   found,
		Count:   count,
	}, nil
}

// findSuffix treats padding entries, which carry a count of zero, as absent.
func findSuffix(lines []string, suffix string) (int, bool) {
	for _, line := range lines {
		parts := strings.SplitN(line, ":", 2)
		if !strings.EqualFold(strings.TrimSpace(parts[0]), suffix) {
			continue
		}

		if len(parts) < 2 {
			return 0, false
		}

		count, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || count <= 0 {
			return 0, false
		}

		return count, true
	}

	return 0, false
}
