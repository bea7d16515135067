package commands

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/history"
	passlog "github.com/pivotal-cf/pass-alert/log"
	"github.com/pivotal-cf/pass-alert/net"
	"github.com/pivotal-cf/pass-alert/strength"
	"github.com/pivotal-cf/pass-alert/tables"
)

const rangeRequestTimeout = 10 * time.Second

// newLogger stays silent unless debug is set so that log lines never mix
// with command output.
func newLogger(name string, debug bool) lager.Logger {
	if !debug {
		return passlog.NewNullLogger()
	}

	logger := lager.NewLogger(name)
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))

	return logger
}

func loadEvaluator(path string) (*strength.Evaluator, error) {
	t := tables.Default()

	if path != "" {
		var err error
		t, err = tables.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	return strength.NewEvaluator(t), nil
}

func newRangeFetcher(baseURL string, clk clock.Clock) breach.RangeFetcher {
	client := net.NewRetryingClient(&http.Client{Timeout: rangeRequestTimeout}, clk)
	return breach.NewRangeClient(client, baseURL)
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pass-alert-history.db"
	}

	return filepath.Join(home, ".pass-alert", "history.db")
}

func openHistory(path string) (*history.BoltStore, error) {
	if path == "" {
		path = defaultHistoryFile()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	return history.NewBoltStore(path)
}

type cleanup struct {
	work []func()
}

func newCleanup() *cleanup {
	clean := &cleanup{}

	signalsCh := make(chan os.Signal, 1)
	signal.Notify(signalsCh, os.Interrupt)

	go func() {
		<-signalsCh
		log.SetFlags(0)
		log.Println("\ncleaning up...")
		clean.exit(1)
	}()

	return clean
}

func (c *cleanup) register(fn func()) {
	c.work = append(c.work, fn)
}

func (c *cleanup) run() {
	for _, w := range c.work {
		w()
	}
	c.work = nil
}

func (c *cleanup) exit(status int) {
	c.run()
	os.Exit(status)
}
