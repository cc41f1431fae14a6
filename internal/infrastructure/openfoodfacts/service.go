package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/foodstorage/backend/internal/domain"
)

const (
	// DefaultBaseURL is the OpenFoodFacts v2 API root
	DefaultBaseURL = "https://world.openfoodfacts.org/api/v2"

	// ProductFields is requested on every call so payloads stay small and shape-stable
	ProductFields = "code,product_name,brands,image_url,serving_quantity,serving_quantity_unit,image_ingredients_url"

	// MinPageSize and MaxPageSize bound a search page
	MinPageSize = 1
	MaxPageSize = 100
)

// Service looks up products in the OpenFoodFacts database.
// It holds only immutable configuration and is safe for concurrent use.
type Service struct {
	client  domain.WebServiceClient
	baseURL string
}

// NewService creates a lookup service. An empty baseURL selects DefaultBaseURL.
func NewService(client domain.WebServiceClient, baseURL string) *Service {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Service{
		client:  client,
		baseURL: baseURL,
	}
}

// LookupByCode retrieves a product by barcode.
// Returns nil, nil when the remote source answered with an empty body.
func (s *Service) LookupByCode(ctx context.Context, code string) (*domain.LookupResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fmt.Errorf("%w: barcode cannot be empty", domain.ErrInvalidArgument)
	}

	log.Printf("[OpenFoodFacts] Retrieving product information for barcode: %s", code)

	body, err := s.client.Get(ctx, s.productURL(code))
	if err != nil {
		log.Printf("[OpenFoodFacts] Error retrieving product for barcode %s: %v", code, err)
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		log.Printf("[OpenFoodFacts] WARNING: Empty response received for barcode: %s", code)
		return nil, nil
	}

	var result domain.LookupResult
	if err := json.Unmarshal([]byte(body), &result); err != nil {
		log.Printf("[OpenFoodFacts] JSON decode error for barcode %s: %v", code, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	if result.IsSuccess() {
		name := ""
		if result.Product != nil {
			name = result.Product.Name()
		}
		log.Printf("[OpenFoodFacts] Successfully retrieved product: %q for barcode: %s", name, code)
	} else {
		log.Printf("[OpenFoodFacts] WARNING: Product not found for barcode: %s. Status: %s", code, result.StatusVerbose)
	}

	return &result, nil
}

// SearchByName searches products by name, one page at a time.
// Returns an empty result when the remote source answered with an empty body.
func (s *Service) SearchByName(ctx context.Context, name string, page, pageSize int) (domain.SearchResult, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: product name cannot be empty", domain.ErrInvalidArgument)
	}
	if pageSize < MinPageSize || pageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: page size must be between %d and %d, got %d",
			domain.ErrOutOfRange, MinPageSize, MaxPageSize, pageSize)
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be greater than 0, got %d", domain.ErrOutOfRange, page)
	}

	log.Printf("[OpenFoodFacts] Searching products by name: %q, page: %d, size: %d", name, page, pageSize)

	body, err := s.client.Get(ctx, s.searchURL(name, page, pageSize))
	if err != nil {
		log.Printf("[OpenFoodFacts] Error searching products by name %q: %v", name, err)
		return nil, err
	}

	if strings.TrimSpace(body) == "" {
		log.Printf("[OpenFoodFacts] WARNING: Empty response received for product search: %q", name)
		return domain.SearchResult{}, nil
	}

	var searchResp domain.SearchResponse
	if err := json.Unmarshal([]byte(body), &searchResp); err != nil {
		log.Printf("[OpenFoodFacts] JSON decode error for search %q: %v", name, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrParse, err)
	}

	products := domain.SearchResult(searchResp.Products)
	if products == nil {
		products = domain.SearchResult{}
	}

	log.Printf("[OpenFoodFacts] Found %d products for search: %q", len(products), name)
	return products, nil
}

// productURL builds {base}/product/{code}.json?fields={fields}
func (s *Service) productURL(code string) string {
	return fmt.Sprintf("%s/product/%s.json?fields=%s", s.baseURL, url.PathEscape(code), ProductFields)
}

// searchURL builds {base}/search?search_terms=...&page=...&page_size=...&fields=...&json=true
func (s *Service) searchURL(name string, page, pageSize int) string {
	return fmt.Sprintf("%s/search?search_terms=%s&page=%d&page_size=%d&fields=%s&json=true",
		s.baseURL, escapeQueryValue(name), page, pageSize, ProductFields)
}

// escapeQueryValue percent-encodes a query value, spaces as %20
func escapeQueryValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}
