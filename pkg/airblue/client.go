package airblue

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	baseURL   = "https://www.airblue.com"
	retryWait = time.Second
)

const searchPath = "/bookings/flight_selection.aspx"

// Client fetches booking result pages from the airblue website.
type Client struct {
	http *resty.Client
}

// NewClient creates a new client. Transient gateway errors are retried
// up to 3 attempts in total.
func NewClient() *Client {
	rc := resty.New().
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(retryWait).
		SetRetryMaxWaitTime(3*retryWait).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36").
		AddRetryCondition(func(res *resty.Response, err error) bool {
			if err != nil {
				return !errors.Is(err, context.Canceled)
			}
			return isTransient(res.StatusCode())
		})

	return &Client{http: rc}
}

func isTransient(status int) bool {
	return status == http.StatusBadGateway ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusGatewayTimeout
}

// FetchResults downloads and parses the results page for q.
func (c *Client) FetchResults(ctx context.Context, q Query) (*Results, error) {
	url := baseURL + searchPath
	slog.Debug("fetching results page", "url", url, "from", q.From, "to", q.To, "round_trip", q.RoundTrip())

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(q.Params()).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", res.StatusCode(), url)
	}

	slog.Debug("fetched results page", "bytes", len(res.Body()), "attempts", res.Request.Attempt)
	return ParseResults(bytes.NewReader(res.Body()))
}
