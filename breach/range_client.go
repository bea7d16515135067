package breach

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/pass-alert/net"
)

const DefaultRangeAPIURL = "https://api.pwnedpasswords.com/range/"

// ErrUpstream means the range API answered with something other than 200.
var ErrUpstream = errors.New("upstream error")

//go:generate counterfeiter . RangeFetcher

type RangeFetcher interface {
	// FetchRange returns the SUFFIX:COUNT lines for a hash prefix.
	FetchRange(ctx context.Context, logger lager.Logger, prefix string) ([]string, error)
}

type rangeClient struct {
	client  net.Client
	baseURL string
}

func NewRangeClient(client net.Client, baseURL string) RangeFetcher {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &rangeClient{
		client:  client,
		baseURL: baseURL,
	}
}

func (c *rangeClient) FetchRange(ctx context.Context, logger lager.Logger, prefix string) ([]string, error) {
	logger = logger.Session("fetch-range", lager.Data{
		"prefix": prefix,
	})
	logger.Debug("starting")

	request, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+strings.ToUpper(prefix), nil)
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}
	request.Header.Set("Add-Padding", "true")

	response, err := c.client.Do(request)
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := ioutil.ReadAll(response.Body)
		err := fmt.Errorf("%w: %s (%d)", ErrUpstream, http.StatusText(response.StatusCode), response.StatusCode)
		logger.Error("unexpected-status-code", err, lager.Data{
			"body": string(body),
		})
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(response.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	logger.Debug("done", lager.Data{
		"lines": len(lines),
	})

	return lines, nil
}
