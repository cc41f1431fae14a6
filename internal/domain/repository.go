package domain

import (
	"context"
)

// WebServiceClient defines the interface for issuing HTTP calls to absolute URLs.
// Each method returns the response body as text, or an error from the taxonomy in errors.go.
type WebServiceClient interface {
	Get(ctx context.Context, url string) (string, error)
	Post(ctx context.Context, url, body string) (string, error)
	Put(ctx context.Context, url, body string) (string, error)
	Delete(ctx context.Context, url string) (string, error)
}

// ProductLookup defines the interface for querying the OpenFoodFacts database
type ProductLookup interface {
	// LookupByCode returns nil, nil when the remote source answered with an empty body.
	LookupByCode(ctx context.Context, code string) (*LookupResult, error)
	SearchByName(ctx context.Context, name string, page, pageSize int) (SearchResult, error)
}
