// Package server exposes the evaluator and the breach range proxy over HTTP
// for a browser frontend.
package server

import (
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/rs/cors"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/history"
	passlog "github.com/pivotal-cf/pass-alert/log"
	"github.com/pivotal-cf/pass-alert/strength"
	"github.com/pivotal-cf/pass-alert/tables"
)

// MaxBodyBytes caps the size of a POST /evaluate body.
const MaxBodyBytes = 100 << 10

type Config struct {
	Logger    lager.Logger
	Evaluator *strength.Evaluator
	Fetcher   breach.RangeFetcher

	// Store is optional. Without one evaluations are not recorded and
	// GET /history answers 404.
	Store history.Store

	Clock         clock.Clock
	AllowedOrigin string
}

type handler struct {
	logger    lager.Logger
	evaluator *strength.Evaluator
	fetcher   breach.RangeFetcher
	checker   *breach.Checker
	store     history.Store
	clock     clock.Clock
}

func New(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = passlog.NewNullLogger()
	}
	if cfg.Evaluator == nil {
		cfg.Evaluator = strength.NewEvaluator(tables.Default())
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.NewClock()
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "*"
	}

	h := &handler{
		logger:    cfg.Logger,
		evaluator: cfg.Evaluator,
		fetcher:   cfg.Fetcher,
		store:     cfg.Store,
		clock:     cfg.Clock,
	}
	if cfg.Fetcher != nil {
		h.checker = breach.NewChecker(cfg.Fetcher)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.health)
	mux.HandleFunc("GET /pwned", h.pwned)
	mux.HandleFunc("POST /evaluate", h.evaluate)
	mux.HandleFunc("GET /history", h.listHistory)
	mux.HandleFunc("DELETE /history", h.clearHistory)

	var root http.Handler = mux
	root = logRequests(cfg.Logger, cfg.Clock, root)
	root = requestID(root)
	root = corsFor(cfg.AllowedOrigin).Handler(root)

	return root
}

func corsFor(origin string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         3600,
	})
}
