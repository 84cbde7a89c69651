package onboarding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/samandr77/microservices/onboarding/internal/entity"
	"github.com/samandr77/microservices/onboarding/pkg/config"
	"github.com/samandr77/microservices/onboarding/pkg/transport"
)

const (
	defaultRetryWaitMin = 200 * time.Millisecond
	defaultRetryWaitMax = 2 * time.Second

	// maxErrorBody limits how much of an unexpected response ends up in the error.
	maxErrorBody = 512
)

type Client struct {
	baseURL string
	adminID int
	http    *http.Client
}

// NewClient builds a client for the admin API. Requests are retried only on transport
// errors, never on a received response.
func NewClient(cfg config.API) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryAttempts
	retryClient.RetryWaitMin = defaultRetryWaitMin
	retryClient.RetryWaitMax = defaultRetryWaitMax
	retryClient.HTTPClient.Timeout = cfg.Timeout
	retryClient.HTTPClient.Transport = transport.NewRoundTripper(http.DefaultTransport, cfg.Token)

	retryClient.Logger = nil

	retryClient.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if err != nil {
			return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		}

		return false, nil
	}

	return &Client{
		baseURL: cfg.BaseURL,
		adminID: cfg.AdminID,
		http:    retryClient.StandardClient(),
	}
}

type listResponse struct {
	Content       *[]entity.Application `json:"content"`
	TotalPages    int                   `json:"totalPages"`
	TotalElements int                   `json:"totalElements"`
}

func (c *Client) endpoint(name string) string {
	return fmt.Sprintf("%s/api/admin/%d/%s", c.baseURL, c.adminID, name)
}

// SaveApplication posts the full draft. Any 2xx status means it was saved.
func (c *Client) SaveApplication(ctx context.Context, app entity.Application) error {
	payload, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("saveApplicationDraft"), bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %d, body: %s", entity.ErrUnexpectedStatus, resp.StatusCode, body)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

// ListApplications fetches one page of the agent's applications.
func (c *Client) ListApplications(ctx context.Context, q entity.ListQuery) (entity.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(q.Size))

	if q.Search != "" {
		params.Set("search", q.Search)
	}

	reqURL := c.endpoint("getApplicationByAgentId") + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return entity.Page{}, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return entity.Page{}, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.Page{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}

		return entity.Page{}, fmt.Errorf("%w: %d, body: %s", entity.ErrUnexpectedStatus, resp.StatusCode, body)
	}

	return decodePage(body)
}

// decodePage accepts the paged object and, from older backends, a bare array.
func decodePage(body []byte) (entity.Page, error) {
	body = bytes.TrimSpace(body)

	if len(body) > 0 && body[0] == '[' {
		var items []entity.Application

		err := json.Unmarshal(body, &items)
		if err != nil {
			return entity.Page{}, fmt.Errorf("%w: %w", entity.ErrBadResponse, err)
		}

		page := entity.Page{Items: items, TotalElements: len(items)}
		if len(items) > 0 {
			page.TotalPages = 1
		}

		return page, nil
	}

	var data listResponse

	err := json.Unmarshal(body, &data)
	if err != nil {
		return entity.Page{}, fmt.Errorf("%w: %w", entity.ErrBadResponse, err)
	}

	if data.Content == nil {
		return entity.Page{}, fmt.Errorf("%w: no content", entity.ErrBadResponse)
	}

	return entity.Page{
		Items:         *data.Content,
		TotalPages:    data.TotalPages,
		TotalElements: data.TotalElements,
	}, nil
}
