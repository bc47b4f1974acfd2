package actionid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ValidateRequest describes one server-side validation of a capture
// session. Csid is the client-generated capture session handle, Uid the
// verifying identifier (email), Action the provider policy branch
// ("login" or "user_enrollment").
type ValidateRequest struct {
	Csid       string
	Uid        string
	Action     string
	Enrollment bool
}

// Verdict is the provider's normalized answer. VerifiedAction=false is a
// normal call outcome, not an error; transport failures surface as
// *ProviderError instead.
type Verdict struct {
	VerifiedAction bool                   `json:"verifiedAction"`
	IvScore        *float64               `json:"ivScore,omitempty"`
	Indicators     map[string]interface{} `json:"indicators,omitempty"`
}

// ProviderError means the provider never produced a verdict: network
// failure, timeout, 5xx/429 after retries, or a fatal 4xx. Status is 0
// when no HTTP response was received.
type ProviderError struct {
	Status int
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("actionid validate failed (%d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("actionid validate failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

type IValidator interface {
	Validate(ctx context.Context, req *ValidateRequest) (*Verdict, error)
}

type Client struct {
	BaseURL     string
	CID         string
	APIKey      string
	MaxAttempts int
	BaseDelay   time.Duration
	HTTPClient  *http.Client

	// sleep is swapped out in tests to observe the backoff curve.
	sleep func(time.Duration)
}

func NewClient(baseURL, cid, apiKey string, maxAttempts int, baseDelay, timeout time.Duration) *Client {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	if baseDelay <= 0 {
		baseDelay = 300 * time.Millisecond
	}
	return &Client{
		BaseURL:     baseURL,
		CID:         cid,
		APIKey:      apiKey,
		MaxAttempts: maxAttempts,
		BaseDelay:   baseDelay,
		HTTPClient:  &http.Client{Timeout: timeout},
		sleep:       time.Sleep,
	}
}

type wireRequest struct {
	Cid        string `json:"cid"`
	Csid       string `json:"csid"`
	Uid        string `json:"uid"`
	Action     string `json:"action"`
	Enrollment bool   `json:"enrollment"`
}

// Validate posts the capture handle to {BaseURL}/v1/validate and returns
// the provider's verdict. Transient failures (network errors, 5xx, 429)
// are retried with exponential backoff, BaseDelay x 2^(attempt-1), up to
// MaxAttempts. Any other 4xx is fatal and returned immediately.
func (c *Client) Validate(ctx context.Context, req *ValidateRequest) (*Verdict, error) {
	body, err := json.Marshal(wireRequest{
		Cid:        c.CID,
		Csid:       req.Csid,
		Uid:        req.Uid,
		Action:     req.Action,
		Enrollment: req.Enrollment,
	})
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	var lastErr *ProviderError
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		if attempt > 1 {
			c.sleep(c.BaseDelay * time.Duration(1<<(attempt-2)))
		}

		verdict, provErr, retryable := c.attempt(ctx, body)
		if provErr == nil {
			return verdict, nil
		}
		if !retryable {
			return nil, provErr
		}
		lastErr = provErr

		if ctx.Err() != nil {
			return nil, &ProviderError{Err: ctx.Err()}
		}
	}
	return nil, lastErr
}

func (c *Client) attempt(ctx context.Context, body []byte) (verdict *Verdict, provErr *ProviderError, retryable bool) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/validate", bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Err: err}, false
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.APIKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		// Network-level error or timeout: counts toward the retry budget.
		return nil, &ProviderError{Err: err}, true
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Status: resp.StatusCode, Err: err}, true
	}

	var v Verdict
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &v); err != nil {
			// Non-JSON body: only transient when the provider itself failed.
			provErr := &ProviderError{Status: resp.StatusCode, Err: fmt.Errorf("non-JSON response")}
			return nil, provErr, resp.StatusCode >= http.StatusInternalServerError
		}
	}

	if resp.StatusCode != http.StatusOK {
		provErr := &ProviderError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
		transient := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return nil, provErr, transient
	}

	return &v, nil, false
}
