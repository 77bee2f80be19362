// Package openrouter provides a resilient chat-completions client that asks
// an OpenRouter hosted model for Korean text corrections
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"redpen/internal/core/corrector"
	perr "redpen/internal/platform/errors"
	"redpen/internal/platform/logger"
)

const (
	baseURLDefault   = "https://openrouter.ai/api/v1"
	modelDefault     = "openai/gpt-4o-mini"
	defaultTimeout   = 30 * time.Second
	defaultMaxRetry  = 2
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration

	// Optional attribution headers OpenRouter uses for rankings
	Referer string
	Title   string

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal OpenRouter chat-completions client
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = modelDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("openrouter"),
		sleep: time.Sleep,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// modelChange is one correction entry in the model's JSON answer
type modelChange struct {
	Type        string `json:"type"`
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

// modelAnswer is the JSON document the prompts instruct the model to emit
type modelAnswer struct {
	Corrected string        `json:"corrected"`
	Changes   []modelChange `json:"changes"`
}

// Correct sends text to the configured model and parses the structured answer.
// Transport failures and non-2xx statuses surface as coded errors; a shape
// mismatch inside an otherwise successful answer degrades to returning the
// text unchanged rather than failing the request
func (c *Client) Correct(ctx context.Context, text, mode string) (corrector.Result, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.opts.Model,
		Messages: []chatMessage{
			{Role: "system", Content: promptFor(mode)},
			{Role: "user", Content: text},
		},
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return corrector.Result{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "openrouter marshal request failed")
	}

	raw, err := c.do(ctx, body)
	if err != nil {
		return corrector.Result{}, err
	}

	var cr chatResponse
	if err := json.Unmarshal(raw, &cr); err != nil {
		return corrector.Result{}, perr.Wrapf(err, perr.ErrorCodeUpstream, "openrouter malformed response envelope")
	}
	if len(cr.Choices) == 0 {
		return corrector.Result{}, perr.Newf(perr.ErrorCodeUpstream, "openrouter response had no choices")
	}

	answer := parseAnswer(cr.Choices[0].Message.Content)

	res := corrector.Result{
		Original:  text,
		Corrected: answer.Corrected,
	}
	if res.Corrected == "" {
		// shape mismatch absorbed, the caller still gets usable output
		c.log.Warn().Str("mode", mode).Msg("model answer missing corrected text, passing input through")
		res.Corrected = text
	}
	for _, ch := range answer.Changes {
		res.Corrections = append(res.Corrections, corrector.Correction{
			Category:    strings.TrimSpace(ch.Type),
			Original:    ch.Original,
			Corrected:   ch.Corrected,
			Explanation: ch.Explanation,
		})
	}
	return res, nil
}

// do issues the POST with auth headers and bounded retries
func (c *Client) do(ctx context.Context, body []byte) ([]byte, error) {
	url := c.opts.BaseURL + "/chat/completions"
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "openrouter new request failed")
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
		if c.opts.Referer != "" {
			req.Header.Set("HTTP-Referer", c.opts.Referer)
		}
		if c.opts.Title != "" {
			req.Header.Set("X-Title", c.opts.Title)
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		lat := time.Since(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "openrouter do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("openrouter transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		c.log.Debug().
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("openrouter http response")

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			_ = resp.Body.Close()
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "openrouter read body failed")
			}
			return raw, nil
		case resp.StatusCode == http.StatusTooManyRequests:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "openrouter rate limited")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("sleep", back).Msg("openrouter rate limited backing off")
			c.sleep(back)
			attempts++
			continue
		case resp.StatusCode >= 500:
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "openrouter transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("openrouter transient error retrying")
			c.sleep(back)
			attempts++
			continue
		default:
			// read a small tail for diagnostics then return
			tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUpstream, "openrouter unexpected status %d body %s", resp.StatusCode, string(tail))
		}
	}
}

// Ping verifies the upstream is reachable, used by the readiness probe
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/models", nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "openrouter new request failed")
	}
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "openrouter ping failed")
	}
	_ = drainAndClose(resp.Body)
	if resp.StatusCode >= 500 {
		return perr.Newf(perr.ErrorCodeUnavailable, "openrouter ping status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	// simple exponential with cap
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(10 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 1<<16))
	return rc.Close()
}
