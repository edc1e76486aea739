package talentmatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 90 * time.Second

// Option configures the Client.
type Option interface {
	apply(*Client)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*Client)

func (f optionFunc) apply(c *Client) { f(c) }

// WithAPIKey sets the bearer token sent with every request.
func WithAPIKey(key string) Option {
	return optionFunc(func(c *Client) {
		c.apiKey = key
	})
}

// WithHTTPClient replaces the underlying HTTP client. The default has a
// 90s timeout; match requests hold the response open while narratives are
// generated, so keep it generous.
func WithHTTPClient(hc *http.Client) Option {
	return optionFunc(func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	})
}

// Client is the talentmatch API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

// SubmitJob stores a job posting and returns its id.
func (c *Client) SubmitJob(ctx context.Context, req JobRequest) (string, error) {
	var resp struct {
		JobID string `json:"jobId"`
	}
	if err := c.do(ctx, http.MethodPost, "/jobs", req, &resp); err != nil {
		return "", err
	}
	return resp.JobID, nil
}

// Jobs lists stored job postings, newest first.
func (c *Client) Jobs(ctx context.Context) ([]Job, error) {
	var resp struct {
		Jobs []Job `json:"jobs"`
	}
	if err := c.do(ctx, http.MethodGet, "/jobs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Jobs, nil
}

// Match ranks stored candidates against the given job. An unknown job id
// fails with ErrNotFound; a job with no matching candidates returns an
// empty Matches list.
func (c *Client) Match(ctx context.Context, jobID string) (MatchReport, error) {
	var resp MatchReport
	path := "/jobs/" + url.PathEscape(jobID) + "/match"
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return MatchReport{}, err
	}
	return resp, nil
}

// SubmitCandidate stores a candidate profile and returns its id.
func (c *Client) SubmitCandidate(ctx context.Context, req CandidateRequest) (string, error) {
	var resp struct {
		CandidateID string `json:"candidateId"`
	}
	if err := c.do(ctx, http.MethodPost, "/candidates", req, &resp); err != nil {
		return "", err
	}
	return resp.CandidateID, nil
}

// Candidates lists the stored candidate pool.
func (c *Client) Candidates(ctx context.Context) ([]Candidate, error) {
	var resp struct {
		Candidates []Candidate `json:"candidates"`
	}
	if err := c.do(ctx, http.MethodGet, "/candidates", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Candidates, nil
}

// UpdateCandidate applies a partial update to a stored candidate.
func (c *Client) UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) error {
	return c.do(ctx, http.MethodPut, "/candidates/"+url.PathEscape(id), patch, nil)
}

// DeleteCandidate removes a stored candidate.
func (c *Client) DeleteCandidate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/candidates/"+url.PathEscape(id), nil, nil)
}

// Stats returns the stored job and candidate counts.
func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var resp Stats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, &resp); err != nil {
		return Stats{}, err
	}
	return resp, nil
}

// Health checks the health of all service components. The report is
// returned even when the service answers 503 for a degraded state.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("talentmatch: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("talentmatch: GET /health: %w", err)
	}
	defer resp.Body.Close()

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return HealthStatus{}, fmt.Errorf("talentmatch: decode response: %w", err)
	}
	return status, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("talentmatch: encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("talentmatch: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("talentmatch: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("talentmatch: decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
	}
	if apiErr.Code == "" {
		apiErr.Code = "unexpected_status"
		apiErr.Message = resp.Status
	}
	return apiErr
}
