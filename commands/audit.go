package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/audit"
)

type AuditCommand struct {
	File     string `short:"f" long:"file" description:"file with one password per line (default: STDIN)" value-name:"FILE"`
	MinScore int    `long:"min-score" default:"60" description:"report passwords scoring below SCORE" value-name:"SCORE"`
	Comments bool   `long:"comments" description:"skip lines starting with # instead of scoring them"`
	Tables   string `long:"tables" env:"PASS_ALERT_TABLES" description:"YAML file overriding the built-in word lists and patterns" value-name:"PATH"`
	NoColor  bool   `long:"no-color" description:"disable colored output"`
	Debug    bool   `long:"debug" description:"enables debug logging"`
}

func (command *AuditCommand) Execute(args []string) error {
	disableColors(command.NoColor)

	logger := newLogger("audit", command.Debug)

	evaluator, err := loadEvaluator(command.Tables)
	if err != nil {
		return err
	}

	auditor := audit.NewAuditor(evaluator, command.MinScore, command.Comments)
	counter := &weakPasswordCounter{}
	clean := newCleanup()

	scanner := audit.NewFileScanner(os.Stdin, "STDIN")
	if command.File != "" {
		file, err := os.Open(command.File)
		if err != nil {
			return err
		}
		clean.register(func() { file.Close() })

		scanner = audit.NewFileScanner(file, command.File)
	}

	err = auditor.Audit(logger, scanner, counter.HandleFinding)

	if counter.count > 0 {
		fmt.Println()
		fmt.Printf("%d password(s) scored below %d.\n", counter.count, command.MinScore)
		clean.exit(belowMinScoreStatus)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, red("[FAILED]"), err)
		clean.exit(1)
	}

	clean.run()

	return nil
}

type weakPasswordCounter struct {
	count int
}

func (c *weakPasswordCounter) HandleFinding(logger lager.Logger, finding audit.Finding) error {
	c.count++

	result := finding.Result
	fmt.Printf("%s %s:%d %s %s (%d/100)\n",
		red("[WEAK]"),
		finding.Path,
		finding.LineNumber,
		result.Password,
		categoryColor(result.Category)(result.Category.String()),
		result.Score,
	)

	logger.Debug("weak-password-found", lager.Data{"line": finding.LineNumber, "count": c.count})

	return nil
}
