package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/foodstorage/backend/internal/domain"
)

// DefaultSearchPageSize is used when the caller does not specify a page size
const DefaultSearchPageSize = 20

// FoodResearchService answers product questions from the external food database
type FoodResearchService struct {
	lookup domain.ProductLookup
}

// NewFoodResearchService creates a new food research service with dependencies
func NewFoodResearchService(lookup domain.ProductLookup) *FoodResearchService {
	return &FoodResearchService{lookup: lookup}
}

// GetProductByBarcode returns the lookup result for a barcode.
// An empty response, a not-found status, or a missing product all yield ErrProductNotFound.
func (s *FoodResearchService) GetProductByBarcode(ctx context.Context, barcode string) (*domain.LookupResult, error) {
	if strings.TrimSpace(barcode) == "" {
		return nil, fmt.Errorf("%w: barcode is required and cannot be empty", domain.ErrInvalidArgument)
	}

	log.Printf("[FoodResearch] Processing barcode lookup: %s", barcode)

	result, err := s.lookup.LookupByCode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	// status==1 does not imply a product, so both are checked
	if result == nil || !result.IsSuccess() || result.Product == nil {
		log.Printf("[FoodResearch] No product found for barcode: %s", barcode)
		return nil, fmt.Errorf("%w: barcode %s", domain.ErrProductNotFound, barcode)
	}

	return result, nil
}

// SearchProducts returns one page of products matching the query
func (s *FoodResearchService) SearchProducts(ctx context.Context, query string, pageSize, page int) (domain.SearchResult, error) {
	log.Printf("[FoodResearch] Processing search: %q, page: %d, size: %d", query, page, pageSize)

	products, err := s.lookup.SearchByName(ctx, query, page, pageSize)
	if err != nil {
		return nil, err
	}

	log.Printf("[FoodResearch] Retrieved %d products for search: %q", len(products), query)
	return products, nil
}
