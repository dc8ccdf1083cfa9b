package mocks

import "net/http"

// HTTPClient allows mocking a model.HTTPClient.
type HTTPClient struct {
	MockDo func(req *http.Request) (*http.Response, error)
}

// Do calls MockDo.
func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.MockDo(req)
}

// HTTPTransport mocks an http.RoundTripper.
type HTTPTransport struct {
	MockRoundTrip func(req *http.Request) (*http.Response, error)
}

// RoundTrip calls MockRoundTrip.
func (txp *HTTPTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return txp.MockRoundTrip(req)
}
