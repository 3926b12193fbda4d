package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"mod-updater/internal/shared"
)

const defaultHTTPTimeout = 60 * time.Second
const defaultHTTPAttempts = 1
const defaultHTTPRetryDelay = 200 * time.Millisecond
const maxHTTPRetryDelay = 2 * time.Second
const maxErrorBody = 512

const userAgent = "mod-updater"

// HTTPConfig controls remote metadata requests. The zero value performs a
// single attempt with a 60s timeout.
type HTTPConfig struct {
	Timeout    time.Duration
	Attempts   int
	RetryDelay time.Duration
	Client     *http.Client
}

func (c HTTPConfig) normalized() HTTPConfig {
	if c.Timeout <= 0 {
		c.Timeout = defaultHTTPTimeout
	}
	if c.Attempts <= 0 {
		c.Attempts = defaultHTTPAttempts
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = defaultHTTPRetryDelay
	}
	if c.Client == nil {
		c.Client = &http.Client{Timeout: c.Timeout}
	}
	return c
}

// fetch performs a GET and returns the body of a 2xx response. Transport
// errors, 5xx and 429 responses are retried while attempts remain.
func fetch(ctx context.Context, url string, accept string, cfg HTTPConfig) ([]byte, error) {
	cfg = cfg.normalized()
	var lastErr error
	for attempt := 0; attempt < cfg.Attempts; attempt++ {
		if ctx.Err() != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("lookup failed: request canceled").
				WithCause(ctx.Err())
		}
		body, retry, err := fetchOnce(ctx, url, accept, cfg)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry || attempt == cfg.Attempts-1 {
			break
		}
		time.Sleep(httpRetryDelay(attempt, cfg))
	}
	return nil, lastErr
}

func fetchOnce(ctx context.Context, url string, accept string, cfg HTTPConfig) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("lookup failed: invalid url " + url).
			WithCause(err)
	}
	req.Header.Set("User-Agent", userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	resp, err := cfg.Client.Do(req)
	if err != nil {
		return nil, true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lookup failed: " + url).
			WithCause(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		retry := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return nil, retry, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("lookup failed: status %d from %s", resp.StatusCode, url)).
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, url, string(snippet)))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("lookup failed: reading " + url).
			WithCause(err)
	}
	return body, false, nil
}

func httpRetryDelay(attempt int, cfg HTTPConfig) time.Duration {
	delay := cfg.RetryDelay * time.Duration(1<<attempt)
	if delay > maxHTTPRetryDelay {
		delay = maxHTTPRetryDelay
	}
	jitter := time.Duration(time.Now().UnixNano() % int64(delay/2+1))
	return delay + jitter
}
