package commands

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/crosscheck"
	"github.com/pivotal-cf/pass-alert/history"
	"github.com/pivotal-cf/pass-alert/strength"
)

// belowMinScoreStatus is the exit status used when --min-score is not met.
const belowMinScoreStatus = 3

var errNoPassword = errors.New("no password given on the command line or STDIN")

type CheckCommand struct {
	JSON        bool   `long:"json" description:"print the evaluation as JSON"`
	Breach      bool   `short:"b" long:"breach" description:"look the password up in the Have I Been Pwned corpus (only a 5 character hash prefix is sent)"`
	RangeAPIURL string `long:"range-api-url" env:"PASS_ALERT_RANGE_API_URL" default:"https://api.pwnedpasswords.com/range/" description:"base URL of the k-anonymity range API" value-name:"URL"`
	Zxcvbn      bool   `long:"zxcvbn" description:"also print zxcvbn's estimate"`
	NoHistory   bool   `long:"no-history" description:"do not record this evaluation"`
	HistoryFile string `long:"history-file" env:"PASS_ALERT_HISTORY_FILE" description:"path to the history file (default: ~/.pass-alert/history.db)" value-name:"PATH"`
	Tables      string `long:"tables" env:"PASS_ALERT_TABLES" description:"YAML file overriding the built-in word lists and patterns" value-name:"PATH"`
	MinScore    int    `long:"min-score" description:"exit with status 3 when the score is below SCORE" value-name:"SCORE"`
	NoColor     bool   `long:"no-color" description:"disable colored output"`
	Debug       bool   `long:"debug" description:"enables debug logging"`

	Args struct {
		Password string `positional-arg-name:"PASSWORD" description:"password to evaluate; read from STDIN when omitted"`
	} `positional-args:"yes"`
}

type checkReport struct {
	strength.Result

	Breach *breach.Status      `json:"breach,omitempty"`
	Zxcvbn *crosscheck.Opinion `json:"zxcvbn,omitempty"`
}

func (command *CheckCommand) Execute(args []string) error {
	disableColors(command.NoColor || command.JSON)

	logger := newLogger("check", command.Debug)
	clk := clock.NewClock()
	ctx := context.Background()

	password, err := command.password(os.Stdin)
	if err != nil {
		return err
	}

	evaluator, err := loadEvaluator(command.Tables)
	if err != nil {
		return err
	}

	clean := newCleanup()
	defer clean.run()

	report := checkReport{
		Result: evaluator.Evaluate(password),
	}

	var enrichErr error

	if command.Breach {
		checker := breach.NewChecker(newRangeFetcher(command.RangeAPIURL, clk))

		status, err := checker.Check(ctx, logger, password)
		if err != nil {
			enrichErr = multierror.Append(enrichErr, fmt.Errorf("breach lookup: %w", err))
		} else {
			report.Breach = &status
		}
	}

	if command.Zxcvbn {
		opinion := crosscheck.Evaluate(password)
		report.Zxcvbn = &opinion
	}

	if !command.NoHistory {
		if err := command.record(ctx, logger, clk, clean, report); err != nil {
			enrichErr = multierror.Append(enrichErr, fmt.Errorf("recording history: %w", err))
		}
	}

	if command.JSON {
		if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
			return err
		}
	} else {
		printReport(os.Stdout, report, command.Breach)
	}

	if enrichErr != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), enrichErr)
	}

	if report.Score < command.MinScore {
		fmt.Fprintf(os.Stderr, "%s score %d is below the minimum of %d\n", red("[FAIL]"), report.Score, command.MinScore)
		clean.exit(belowMinScoreStatus)
	}

	return nil
}

func (command *CheckCommand) password(stdin io.Reader) (string, error) {
	if command.Args.Password != "" {
		return command.Args.Password, nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err == io.EOF && line == "" {
		return "", errNoPassword
	}
	if err != nil && err != io.EOF {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (command *CheckCommand) record(ctx context.Context, logger lager.Logger, clk clock.Clock, clean *cleanup, report checkReport) error {
	store, err := openHistory(command.HistoryFile)
	if err != nil {
		return err
	}
	clean.register(func() { store.Close() })

	return store.Save(ctx, logger, history.NewEntry(clk, report.Result, report.Breach))
}

func printReport(w io.Writer, report checkReport, breachRequested bool) {
	colorize := categoryColor(report.Category)

	fmt.Fprintf(w, "Strength:    %s (%d/%d)\n", colorize(report.Category.String()), report.Score, strength.MaxScore)
	fmt.Fprintf(w, "Entropy:     %.1f bits\n", report.EntropyBits)
	fmt.Fprintf(w, "Crack time:  %s\n", report.CrackTime)

	if breachRequested {
		fmt.Fprintf(w, "Breached:    %s\n", describeBreach(report.Breach))
	}

	if report.Zxcvbn != nil {
		truncated := ""
		if report.Zxcvbn.Truncated {
			truncated = faint(fmt.Sprintf(" (first %d characters)", crosscheck.MaxInputLength))
		}
		fmt.Fprintf(w, "zxcvbn:      %d/4, cracked in %s%s\n", report.Zxcvbn.Score, report.Zxcvbn.CrackTime, truncated)
	}

	if len(report.Patterns) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Patterns:")
		for _, p := range report.Patterns {
			fmt.Fprintf(w, "  %s %s\n", cyan("["+string(p.Type)+"]"), p.Details)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  %s %s\n", yellow("[WARN]"), warning)
		}
	}

	if len(report.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, suggestion := range report.Suggestions {
			fmt.Fprintf(w, "  - %s\n", suggestion)
		}
	}
}

func describeBreach(status *breach.Status) string {
	switch {
	case status == nil || !status.Checked:
		return faint("unavailable")
	case status.Found:
		return red(fmt.Sprintf("yes, seen %d times", status.Count))
	default:
		return green("not found")
	}
}
