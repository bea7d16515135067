package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pivotal-cf/pass-alert/history"
)

type HistoryCommand struct {
	JSON        bool   `long:"json" description:"print the history as JSON"`
	Clear       bool   `long:"clear" description:"forget every recorded evaluation"`
	HistoryFile string `long:"history-file" env:"PASS_ALERT_HISTORY_FILE" description:"path to the history file (default: ~/.pass-alert/history.db)" value-name:"PATH"`
	NoColor     bool   `long:"no-color" description:"disable colored output"`
	Debug       bool   `long:"debug" description:"enables debug logging"`
}

func (command *HistoryCommand) Execute(args []string) error {
	disableColors(command.NoColor || command.JSON)

	logger := newLogger("history", command.Debug)
	ctx := context.Background()

	store, err := openHistory(command.HistoryFile)
	if err != nil {
		return err
	}
	defer store.Close()

	if command.Clear {
		if err := store.Clear(ctx, logger); err != nil {
			return err
		}

		fmt.Println("History cleared.")
		return nil
	}

	entries, err := store.List(ctx, logger)
	if err != nil {
		return err
	}

	if command.JSON {
		if entries == nil {
			entries = []history.Entry{}
		}
		return json.NewEncoder(os.Stdout).Encode(entries)
	}

	printHistory(os.Stdout, entries)

	return nil
}

func printHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No evaluations recorded yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tPASSWORD\tSCORE\tSTRENGTH\tBREACHED")

	for _, entry := range entries {
		when := time.Unix(0, entry.Timestamp*int64(time.Millisecond)).Local().Format("2006-01-02 15:04:05")

		breached := "-"
		if entry.Breach != nil {
			breached = describeBreach(entry.Breach)
		}

		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			when,
			entry.Password,
			entry.Score,
			categoryColor(entry.Category)(entry.Category.String()),
			breached,
		)
	}

	tw.Flush()
}
