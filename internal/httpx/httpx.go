// Package httpx contains http extensions.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/osmcities/osmcities/internal/model"
)

// DefaultMaxBodySize is the default value for the maximum
// body size you can fetch using an APIClient.
const DefaultMaxBodySize = 1 << 28

// APIClient is an extended HTTP client. To construct this APIClient, make
// sure you initialize all fields marked as MANDATORY.
type APIClient struct {
	// Accept contains the OPTIONAL accept header.
	Accept string

	// BaseURL is the MANDATORY base URL of the API.
	BaseURL string

	// HTTPClient is the MANDATORY underlying http client to use.
	HTTPClient model.HTTPClient

	// Logger is MANDATORY the logger to use.
	Logger model.DebugLogger

	// MaxBodySize is the OPTIONAL maximum response body size. When
	// zero or negative, we use DefaultMaxBodySize.
	MaxBodySize int64

	// UserAgent is the OPTIONAL user agent to use.
	UserAgent string
}

// newRequest creates a new request. An empty resourcePath keeps
// the path of the BaseURL unchanged.
func (c *APIClient) newRequest(ctx context.Context, method, resourcePath string,
	query url.Values, body io.Reader) (*http.Request, error) {
	URL, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if resourcePath != "" {
		URL.Path = resourcePath
	}
	if query != nil {
		URL.RawQuery = query.Encode()
	}
	c.Logger.Debugf("httpx: method: %s", method)
	c.Logger.Debugf("httpx: URL: %s", URL.Redacted())
	request, err := http.NewRequestWithContext(ctx, method, URL.String(), body)
	if err != nil {
		return nil, err
	}
	if c.Accept != "" {
		request.Header.Set("Accept", c.Accept)
	}
	if c.UserAgent != "" {
		request.Header.Set("User-Agent", c.UserAgent)
	}
	return request, nil
}

// ErrRequestFailed indicates that the server returned >= 400.
var ErrRequestFailed = errors.New("httpx: request failed")

// ErrBodyTooLarge indicates that the response body exceeds the maximum body size.
var ErrBodyTooLarge = errors.New("httpx: response body too large")

// maxBodySize returns the effective maximum body size.
func (c *APIClient) maxBodySize() int64 {
	if c.MaxBodySize > 0 {
		return c.MaxBodySize
	}
	return DefaultMaxBodySize
}

// do performs the provided request and returns the response body or an error.
func (c *APIClient) do(request *http.Request) ([]byte, error) {
	response, err := c.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode >= 400 {
		return nil, &ErrStatusCode{StatusCode: response.StatusCode, Status: response.Status}
	}
	limit := c.maxBodySize()
	data, err := io.ReadAll(io.LimitReader(response.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, limit)
	}
	return data, nil
}

// ErrStatusCode is the error returned when the server returned >= 400.
// It wraps ErrRequestFailed, so you can test for it using errors.Is.
type ErrStatusCode struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Status is the HTTP status line.
	Status string
}

// Error implements error.
func (err *ErrStatusCode) Error() string {
	return fmt.Sprintf("%s: %s", ErrRequestFailed.Error(), err.Status)
}

// Unwrap allows errors.Is to find ErrRequestFailed.
func (err *ErrStatusCode) Unwrap() error {
	return ErrRequestFailed
}

// doJSON performs the provided request and unmarshals the JSON response body
// into the provided output variable.
func (c *APIClient) doJSON(request *http.Request, output interface{}) error {
	data, err := c.do(request)
	if err != nil {
		return err
	}
	c.Logger.Debugf("httpx: response body: %d bytes", len(data))
	return json.Unmarshal(data, output)
}

// GetJSONWithQuery reads the JSON resource at resourcePath using the given
// query and unmarshals the results into output. The request is bounded by the
// lifetime of the context passed as argument. Returns the error that occurred.
func (c *APIClient) GetJSONWithQuery(
	ctx context.Context, resourcePath string,
	query url.Values, output interface{}) error {
	request, err := c.newRequest(ctx, "GET", resourcePath, query, nil)
	if err != nil {
		return err
	}
	return c.doJSON(request, output)
}
