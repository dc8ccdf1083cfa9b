package model

//
// Common HTTP definitions.
//

import "net/http"

const (
	// HTTPHeaderAccept is the Accept header used when querying Overpass.
	HTTPHeaderAccept = "application/json"
)

// HTTPClient is anything that looks like an [*http.Client].
type HTTPClient interface {
	// Do behaves like [*http.Client.Do].
	Do(req *http.Request) (*http.Response, error)
}
