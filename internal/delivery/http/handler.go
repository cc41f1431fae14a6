package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/foodstorage/backend/internal/domain"
	"github.com/foodstorage/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	foodResearch *usecase.FoodResearchService
}

// NewHandler creates a new HTTP handler
func NewHandler(foodResearch *usecase.FoodResearchService) *Handler {
	return &Handler{foodResearch: foodResearch}
}

// SearchQuery holds the query-string parameters of a product search
type SearchQuery struct {
	Query    string `form:"query"`
	PageSize int    `form:"pageSize,default=20"`
	Page     int    `form:"page,default=1"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "foodstorage-backend",
		"version": "1.0.0",
	})
}

// GetProductByBarcode handles GET /api/v1/food-research/barcode/:barcode
func (h *Handler) GetProductByBarcode(c *gin.Context) {
	if h.foodResearch == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Food research service not configured"})
		return
	}

	barcode := c.Param("barcode")
	result, err := h.foodResearch.GetProductByBarcode(c.Request.Context(), barcode)
	if err != nil {
		switch {
		case domain.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Barcode is required and cannot be empty"})
		case errors.Is(err, domain.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Product with barcode '%s' not found", barcode)})
		default:
			log.Printf("[Handler] Error retrieving product for barcode %s: %v", barcode, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while retrieving product information"})
		}
		return
	}

	c.JSON(http.StatusOK, MapLookupResponse(result))
}

// SearchProducts handles GET /api/v1/food-research/search
func (h *Handler) SearchProducts(c *gin.Context) {
	if h.foodResearch == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Food research service not configured"})
		return
	}

	var query SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Page size and page must be integers"})
		return
	}

	products, err := h.foodResearch.SearchProducts(c.Request.Context(), query.Query, query.PageSize, query.Page)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Search query is required and cannot be empty"})
		case errors.Is(err, domain.ErrOutOfRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": searchRangeMessage(query)})
		default:
			log.Printf("[Handler] Error searching products for query %q: %v", query.Query, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while searching for products"})
		}
		return
	}

	c.JSON(http.StatusOK, MapSearchResponse(products))
}

// GetAPIInfo describes the OpenFoodFacts integration
func (h *Handler) GetAPIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "OpenFoodFacts Integration",
		"description": "Provides access to product information from the OpenFoodFacts database",
		"version":     "1.0.0",
		"dataSource":  "https://world.openfoodfacts.org/",
		"supportedOperations": []string{
			"Get product by barcode",
			"Search products by name",
		},
		"rateLimits":    "Please respect OpenFoodFacts rate limits",
		"documentation": "https://openfoodfacts.github.io/api-documentation/",
	})
}

func searchRangeMessage(query SearchQuery) string {
	if query.PageSize < 1 || query.PageSize > 100 {
		return "Page size must be between 1 and 100"
	}
	return "Page number must be greater than 0"
}
