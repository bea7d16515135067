package net

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net/http"
	"time"

	"code.cloudfoundry.org/clock"
)

type retryingClient struct {
	client Client
	clock  clock.Clock
}

const maxRetries = 3

// NewRetryingClient retries transport errors and gateway failures with a
// jittered back-off. The request context bounds the whole exchange.
func NewRetryingClient(c Client, clk clock.Clock) Client {
	return &retryingClient{
		client: c,
		clock:  clk,
	}
}

func (c *retryingClient) Do(orgReq *http.Request) (*http.Response, error) {
	var body []byte
	if orgReq.Body != nil {
		var err error
		body, err = ioutil.ReadAll(orgReq.Body)
		if err != nil {
			return nil, err
		}
	}

	ctx := orgReq.Context()

	var lastErr error
	for i := 0; i < maxRetries+1; i++ {
		req, reqErr := http.NewRequestWithContext(ctx, orgReq.Method, orgReq.URL.String(), bytes.NewBuffer(body))
		if reqErr != nil {
			return nil, reqErr
		}

		req.Header = orgReq.Header

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.delayForAttempt(i):
		}

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if retryable(resp.StatusCode) && i < maxRetries {
			resp.Body.Close()
			lastErr = fmt.Errorf("server responded with %d", resp.StatusCode)
			continue
		}

		return resp, nil
	}

	return nil, fmt.Errorf("request failed after retry: %w", lastErr)
}

var delays = [3][2]int{
	{250, 750},
	{375, 1125},
	{562, 1687},
}

func (c *retryingClient) delayForAttempt(i int) <-chan time.Time {
	if i == 0 {
		now := make(chan time.Time, 1)
		now <- c.clock.Now()
		return now
	}

	random := rand.Intn(delays[i-1][1]-delays[i-1][0]) + delays[i-1][0]
	return c.clock.After(time.Duration(random) * time.Millisecond)
}

func retryable(status int) bool {
	switch status {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
