package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Result is the verdict returned by the captcha provider.
type Result struct {
	Success bool
	Score   float64
	Errors  []string
}

// Verifier checks captcha tokens submitted with public intake forms.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (Result, error)
}

type Client struct {
	secret     string
	verifyURL  string
	httpClient *http.Client
}

func NewClient(secret, verifyURL string, httpClient *http.Client) *Client {
	if verifyURL == "" {
		verifyURL = defaultVerifyURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		secret:     strings.TrimSpace(secret),
		verifyURL:  verifyURL,
		httpClient: httpClient,
	}
}

// Enabled reports whether a secret is configured. Without one every
// token passes, which keeps local development working.
func (c *Client) Enabled() bool {
	return c.secret != ""
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	ErrorCodes []string `json:"error-codes"`
}

func (c *Client) Verify(ctx context.Context, token, remoteIP string) (Result, error) {
	if !c.Enabled() {
		return Result{Success: true}, nil
	}
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", strings.TrimSpace(token))
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Result{}, fmt.Errorf("create captcha request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send captcha request: %w", err)
	}
	defer resp.Body.Close()
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read captcha response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("captcha api status %d", resp.StatusCode)
	}
	var parsed verifyResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return Result{}, fmt.Errorf("decode captcha response: %w", err)
	}
	return Result{Success: parsed.Success, Score: parsed.Score, Errors: parsed.ErrorCodes}, nil
}
