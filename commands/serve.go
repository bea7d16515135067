package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/redis/go-redis/v9"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/pivotal-cf/pass-alert/breach"
	"github.com/pivotal-cf/pass-alert/history"
	"github.com/pivotal-cf/pass-alert/server"
)

const redisPingTimeout = 5 * time.Second

type ServeCommand struct {
	BindIP         string        `long:"bind-ip" env:"BIND_IP" default:"0.0.0.0" description:"address to listen on" value-name:"IP"`
	Port           int           `long:"port" env:"PORT" default:"4000" description:"port to listen on" value-name:"PORT"`
	FrontendOrigin string        `long:"frontend-origin" env:"FRONTEND_ORIGIN" default:"*" description:"origin allowed to call the API from a browser" value-name:"ORIGIN"`
	RangeAPIURL    string        `long:"range-api-url" env:"PASS_ALERT_RANGE_API_URL" default:"https://api.pwnedpasswords.com/range/" description:"base URL of the k-anonymity range API" value-name:"URL"`
	RedisURL       string        `long:"redis-url" env:"REDIS_URL" description:"redis used for history and range caching, e.g. redis://localhost:6379/0" value-name:"URL"`
	HistoryKey     string        `long:"history-key" env:"PASS_ALERT_HISTORY_KEY" default:"pass-alert:history" description:"redis list holding the history" value-name:"KEY"`
	HistoryFile    string        `long:"history-file" env:"PASS_ALERT_HISTORY_FILE" description:"keep history in this file when no redis is configured" value-name:"PATH"`
	CacheTTL       time.Duration `long:"cache-ttl" env:"PASS_ALERT_CACHE_TTL" default:"1h" description:"how long range responses stay cached in redis" value-name:"DURATION"`
	Tables         string        `long:"tables" env:"PASS_ALERT_TABLES" description:"YAML file overriding the built-in word lists and patterns" value-name:"PATH"`
	Debug          bool          `long:"debug" description:"enables debug logging"`
}

func (command *ServeCommand) Validate() error {
	var errs error

	if command.Port <= 0 || command.Port > 65535 {
		errs = multierror.Append(errs, fmt.Errorf("port %d is out of range", command.Port))
	}

	if command.CacheTTL <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("cache ttl must be positive, got %s", command.CacheTTL))
	}

	if command.RangeAPIURL == "" {
		errs = multierror.Append(errs, fmt.Errorf("range api url must not be empty"))
	}

	if command.RedisURL != "" && command.HistoryFile != "" {
		errs = multierror.Append(errs, fmt.Errorf("--redis-url and --history-file cannot be used together"))
	}

	return errs
}

func (command *ServeCommand) Execute(args []string) error {
	logger := lager.NewLogger("pass-alert")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))
	}

	if err := command.Validate(); err != nil {
		return err
	}

	evaluator, err := loadEvaluator(command.Tables)
	if err != nil {
		return err
	}

	clk := clock.NewClock()
	fetcher := newRangeFetcher(command.RangeAPIURL, clk)

	var store history.Store

	switch {
	case command.RedisURL != "":
		client, err := connectRedis(logger, command.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()

		fetcher = breach.NewCachingFetcher(fetcher, breach.NewRedisCache(client), command.CacheTTL)
		store = history.NewRedisStore(client, command.HistoryKey)
	case command.HistoryFile != "":
		boltStore, err := openHistory(command.HistoryFile)
		if err != nil {
			return err
		}
		defer boltStore.Close()

		store = boltStore
	}

	handler := server.New(server.Config{
		Logger:        logger,
		Evaluator:     evaluator,
		Fetcher:       fetcher,
		Store:         store,
		Clock:         clk,
		AllowedOrigin: command.FrontendOrigin,
	})

	address := fmt.Sprintf("%s:%d", command.BindIP, command.Port)

	members := []grouper.Member{
		{Name: "api", Runner: http_server.New(address, handler)},
	}

	runner := sigmon.New(grouper.NewOrdered(os.Interrupt, members))

	logger.Info("listening", lager.Data{
		"address":         address,
		"frontend-origin": command.FrontendOrigin,
		"history":         store != nil,
	})

	err = <-ifrit.Invoke(runner).Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		return err
	}

	logger.Info("exited")

	return nil
}

func connectRedis(logger lager.Logger, url string) (*redis.Client, error) {
	logger = logger.Session("connect-redis")

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		logger.Error("failed", err)
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	logger.Info("done", lager.Data{"addr": opts.Addr})

	return client, nil
}
