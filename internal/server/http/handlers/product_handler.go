package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/domain/repository"
	"github.com/polkiloo/gophershop/internal/server/http/dto"
)

// ProductHandler manages product endpoints.
type ProductHandler struct {
	facade ProductFacade
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(facade ProductFacade) *ProductHandler {
	return &ProductHandler{facade: facade}
}

// Create handles POST /api/v1/product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	images := make([]model.ProductImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, model.ProductImage{ID: img.ID, URL: img.URL})
	}
	product := &model.Product{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		SubcategoryID:   req.SubcategoryID,
		BrandID:         req.BrandID,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		FinalPrice:      req.Price * (1 - req.DiscountPercent/100),
		Stock:           req.Stock,
		Images:          images,
	}

	created, err := h.facade.CreateProduct(c.Request.Context(), product)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductResponse(*created))
}

// Get handles GET /api/v1/product/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.facade.Product(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*product))
}

// List handles GET /api/v1/product?category=&brand=.
func (h *ProductHandler) List(c *gin.Context) {
	var filter repository.ProductFilter
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid category filter"})
			return
		}
		filter.CategoryID = &id
	}
	if raw := c.Query("brand"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid brand filter"})
			return
		}
		filter.BrandID = &id
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}
	c.JSON(http.StatusOK, response)
}

// SetStock handles PATCH /api/v1/product/:id/stock.
func (h *ProductHandler) SetStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	if err := h.facade.SetProductStock(c.Request.Context(), id, *req.Stock); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toProductResponse(product model.Product) dto.ProductResponse {
	images := make([]dto.ProductImageDTO, 0, len(product.Images))
	for _, img := range product.Images {
		images = append(images, dto.ProductImageDTO{ID: img.ID, URL: img.URL})
	}
	return dto.ProductResponse{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		CategoryID:      product.CategoryID,
		SubcategoryID:   product.SubcategoryID,
		BrandID:         product.BrandID,
		Price:           product.Price,
		DiscountPercent: product.DiscountPercent,
		FinalPrice:      product.FinalPrice,
		Stock:           product.Stock,
		Images:          images,
		CreatedAt:       product.CreatedAt,
	}
}
