// Package overpass contains a minimal Overpass API client.
//
// We send a single GET request to the interpreter endpoint with the
// query inside the "data" parameter and decode the JSON response. There
// is no retry and no client-side deadline: the query itself asks the
// server to give up after 300 seconds.
package overpass

import (
	"context"
	"net/url"

	"github.com/osmcities/osmcities/internal/httpx"
	"github.com/osmcities/osmcities/internal/model"
)

// DefaultEndpoint is the default Overpass interpreter endpoint.
const DefaultEndpoint = "http://overpass-api.de/api/interpreter"

// Client is an Overpass API client. Please use the NewClient
// factory to construct a new instance of client, otherwise
// you MUST fill all the fields marked as MANDATORY.
type Client struct {
	// API is the MANDATORY underlying API client.
	API *httpx.APIClient

	// Logger is the MANDATORY logger to use.
	Logger model.DebugLogger
}

// NewClient creates a new Overpass client for the given endpoint.
func NewClient(endpoint string, httpClient model.HTTPClient, logger model.DebugLogger, userAgent string) *Client {
	return &Client{
		API: &httpx.APIClient{
			Accept:     model.HTTPHeaderAccept,
			BaseURL:    endpoint,
			HTTPClient: httpClient,
			Logger:     logger,
			UserAgent:  userAgent,
		},
		Logger: logger,
	}
}

// Fetch runs the given query and returns the decoded document. A
// literal JSON null response causes an [httpx.ErrIsNil] error.
func (c *Client) Fetch(ctx context.Context, query string) (*model.OverpassDocument, error) {
	c.Logger.Debugf("overpass: GET %s (%d bytes of query)", c.API.BaseURL, len(query))
	var doc *model.OverpassDocument
	err := c.API.GetJSONWithQuery(ctx, "", url.Values{"data": {query}}, &doc)
	c.Logger.Debugf("overpass: GET %s... %s", c.API.BaseURL, model.ErrorToStringOrOK(err))
	if err != nil {
		return nil, err
	}
	return httpx.NilSafetyErrorIfNil(doc)
}
