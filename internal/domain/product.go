package domain

import (
	"strconv"
	"strings"
)

// LookupStatusFound is the envelope status the remote source uses for a matched product
const LookupStatusFound = 1

// RemoteProduct represents a product record from the OpenFoodFacts database.
// Optional fields are pointers so that an absent value stays distinguishable
// from an empty or zero one.
type RemoteProduct struct {
	Code                string   `json:"code"`
	ProductName         *string  `json:"product_name,omitempty"`
	Brands              *string  `json:"brands,omitempty"`
	ImageURL            *string  `json:"image_url,omitempty"`
	ImageIngredientsURL *string  `json:"image_ingredients_url,omitempty"`
	ServingQuantity     *float64 `json:"serving_quantity,omitempty"`
	ServingQuantityUnit *string  `json:"serving_quantity_unit,omitempty"`
}

// BrandList splits the comma-separated brands string into trimmed, non-empty entries.
func (p *RemoteProduct) BrandList() []string {
	brands := []string{}
	if isBlank(p.Brands) {
		return brands
	}

	for _, brand := range strings.Split(*p.Brands, ",") {
		if trimmed := strings.TrimSpace(brand); trimmed != "" {
			brands = append(brands, trimmed)
		}
	}
	return brands
}

// ServingSize formats quantity and unit as "15 g", or "" when either is missing.
func (p *RemoteProduct) ServingSize() string {
	if p.ServingQuantity == nil || isBlank(p.ServingQuantityUnit) {
		return ""
	}
	quantity := strconv.FormatFloat(*p.ServingQuantity, 'f', -1, 64)
	return quantity + " " + *p.ServingQuantityUnit
}

// HasImage reports whether the product has a main image URL
func (p *RemoteProduct) HasImage() bool {
	return !isBlank(p.ImageURL)
}

// HasIngredientsImage reports whether the product has an ingredients image URL
func (p *RemoteProduct) HasIngredientsImage() bool {
	return !isBlank(p.ImageIngredientsURL)
}

// Name returns the product name, or "" when absent
func (p *RemoteProduct) Name() string {
	if p.ProductName == nil {
		return ""
	}
	return *p.ProductName
}

// LookupResult is the envelope returned by a by-code product lookup.
// IsSuccess does not guarantee Product is set; callers must check both.
type LookupResult struct {
	Code          string         `json:"code"`
	Product       *RemoteProduct `json:"product,omitempty"`
	Status        int            `json:"status"`
	StatusVerbose string         `json:"status_verbose"`
}

// IsSuccess reports whether the remote source found the product
func (r *LookupResult) IsSuccess() bool {
	return r.Status == LookupStatusFound
}

// SearchResponse is the envelope returned by a by-name product search.
// Count is reported by the remote source and is not relied upon.
type SearchResponse struct {
	Products []RemoteProduct `json:"products"`
	Count    int             `json:"count"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// SearchResult is one page of products in the order returned by the remote source
type SearchResult []RemoteProduct

// isBlank treats absent and whitespace-only values the same
func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
