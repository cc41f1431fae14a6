package http

import (
	"github.com/foodstorage/backend/internal/domain"
)

// ProductResponse is the API representation of a remote product, derived fields included
type ProductResponse struct {
	Code                string   `json:"code"`
	ProductName         *string  `json:"productName"`
	Brands              *string  `json:"brands"`
	ImageURL            *string  `json:"imageUrl"`
	ImageIngredientsURL *string  `json:"imageIngredientsUrl"`
	ServingQuantity     *float64 `json:"servingQuantity"`
	ServingQuantityUnit *string  `json:"servingQuantityUnit"`
	BrandList           []string `json:"brandList"`
	ServingSize         string   `json:"servingSize"`
	HasImage            bool     `json:"hasImage"`
	HasIngredientsImage bool     `json:"hasIngredientsImage"`
}

// LookupResponse is the API representation of a barcode lookup
type LookupResponse struct {
	Status    int              `json:"status"`
	IsSuccess bool             `json:"isSuccess"`
	Product   *ProductResponse `json:"product"`
}

// MapProductResponse converts a domain product to its API representation
func MapProductResponse(p *domain.RemoteProduct) ProductResponse {
	return ProductResponse{
		Code:                p.Code,
		ProductName:         p.ProductName,
		Brands:              p.Brands,
		ImageURL:            p.ImageURL,
		ImageIngredientsURL: p.ImageIngredientsURL,
		ServingQuantity:     p.ServingQuantity,
		ServingQuantityUnit: p.ServingQuantityUnit,
		BrandList:           p.BrandList(),
		ServingSize:         p.ServingSize(),
		HasImage:            p.HasImage(),
		HasIngredientsImage: p.HasIngredientsImage(),
	}
}

// MapLookupResponse converts a lookup result to its API representation
func MapLookupResponse(result *domain.LookupResult) LookupResponse {
	resp := LookupResponse{
		Status:    result.Status,
		IsSuccess: result.IsSuccess(),
	}
	if result.Product != nil {
		product := MapProductResponse(result.Product)
		resp.Product = &product
	}
	return resp
}

// MapSearchResponse converts search results, always yielding a non-nil slice
func MapSearchResponse(products domain.SearchResult) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, MapProductResponse(&products[i]))
	}
	return resp
}
