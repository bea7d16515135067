// Package audit evaluates every password in a list and reports the ones
// that fall below a minimum score.
package audit

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pass-alert/history"
	"github.com/pivotal-cf/pass-alert/matchers"
	"github.com/pivotal-cf/pass-alert/strength"
)

const commentPattern = `^\s*#`

type Line struct {
	Path       string
	LineNumber int
	Content    string
}

// Finding is a password that scored below the minimum. Its Result carries
// the masked password only.
type Finding struct {
	Path       string
	LineNumber int
	Result     strength.Result
}

//go:generate counterfeiter . Scanner

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *Line
	Err() error
}

//go:generate counterfeiter . Auditor

type Auditor interface {
	Audit(lager.Logger, Scanner, FindingHandlerFunc) error
}

type FindingHandlerFunc func(lager.Logger, Finding) error

type auditor struct {
	evaluator        *strength.Evaluator
	minScore         int
	exclusionMatcher matchers.Matcher
}

// NewAuditor returns an Auditor that scores every non-empty line. When
// skipComments is set, lines whose first non-blank character is # are
// skipped too.
func NewAuditor(evaluator *strength.Evaluator, minScore int, skipComments bool) Auditor {
	a := &auditor{
		evaluator: evaluator,
		minScore:  minScore,
	}

	if skipComments {
		a.exclusionMatcher = matchers.Format(commentPattern)
	}

	return a
}

func (a *auditor) excluded(content string) bool {
	if content == "" {
		return true
	}

	if a.exclusionMatcher == nil {
		return false
	}

	match, _, _ := a.exclusionMatcher.Match(content)
	return match
}

func (a *auditor) Audit(
	logger lager.Logger,
	scanner Scanner,
	handleFinding FindingHandlerFunc,
) error {
	logger = logger.Session("audit", lager.Data{
		"min-score":     a.minScore,
		"skip-comments": a.exclusionMatcher != nil,
	})
	logger.Debug("starting")

	var result error
	var checked, weak int

	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		if a.excluded(line.Content) {
			continue
		}

		checked++

		evaluation := a.evaluator.Evaluate(line.Content)
		if evaluation.Score >= a.minScore {
			continue
		}

		weak++
		evaluation.Password = history.Mask(evaluation.Password)

		err := handleFinding(logger, Finding{
			Path:       line.Path,
			LineNumber: line.LineNumber,
			Result:     evaluation,
		})
		if err != nil {
			logger.Error("failed", err)
			result = multierror.Append(result, err)
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("scanning-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done", lager.Data{
		"checked": checked,
		"weak":    weak,
	})

	return result
}
