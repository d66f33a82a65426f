package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gophershop/internal/domain/model"
	"github.com/polkiloo/gophershop/internal/server/http/dto"
)

// CatalogHandler manages category, subcategory and brand endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// CreateCategory handles POST /api/v1/category.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	category, err := h.facade.CreateCategory(c.Request.Context(), CurrentUserID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCategoryResponse(*category))
}

// GetCategory handles GET /api/v1/category/:id.
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.facade.Category(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// ListCategories handles GET /api/v1/category.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateCategory handles PATCH /api/v1/category/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	category, err := h.facade.RenameCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*category))
}

// DeleteCategory handles DELETE /api/v1/category/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateSubcategory handles POST /api/v1/subcategory.
func (h *CatalogHandler) CreateSubcategory(c *gin.Context) {
	var req dto.SubcategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	sub, err := h.facade.CreateSubcategory(c.Request.Context(), req.CategoryID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSubcategoryResponse(*sub))
}

// GetSubcategory handles GET /api/v1/subcategory/:id.
func (h *CatalogHandler) GetSubcategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	sub, err := h.facade.Subcategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubcategoryResponse(*sub))
}

// ListSubcategories handles GET /api/v1/subcategory?category=.
func (h *CatalogHandler) ListSubcategories(c *gin.Context) {
	var categoryID *int64
	if raw := c.Query("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid category filter"})
			return
		}
		categoryID = &id
	}
	subs, err := h.facade.Subcategories(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.SubcategoryResponse, 0, len(subs))
	for _, sub := range subs {
		response = append(response, toSubcategoryResponse(sub))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateSubcategory handles PATCH /api/v1/subcategory/:id.
func (h *CatalogHandler) UpdateSubcategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	sub, err := h.facade.RenameSubcategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubcategoryResponse(*sub))
}

// DeleteSubcategory handles DELETE /api/v1/subcategory/:id.
func (h *CatalogHandler) DeleteSubcategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteSubcategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateBrand handles POST /api/v1/brand.
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	brand, err := h.facade.CreateBrand(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBrandResponse(*brand))
}

// GetBrand handles GET /api/v1/brand/:id.
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	brand, err := h.facade.Brand(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBrandResponse(*brand))
}

// ListBrands handles GET /api/v1/brand.
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	brands, err := h.facade.Brands(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]dto.BrandResponse, 0, len(brands))
	for _, brand := range brands {
		response = append(response, toBrandResponse(brand))
	}
	c.JSON(http.StatusOK, response)
}

// UpdateBrand handles PATCH /api/v1/brand/:id.
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}
	brand, err := h.facade.RenameBrand(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBrandResponse(*brand))
}

// DeleteBrand handles DELETE /api/v1/brand/:id.
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteBrand(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toCategoryResponse(category model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Slug:      category.Slug,
		CreatedAt: category.CreatedAt,
	}
}

func toSubcategoryResponse(sub model.Subcategory) dto.SubcategoryResponse {
	return dto.SubcategoryResponse{
		ID:         sub.ID,
		CategoryID: sub.CategoryID,
		Name:       sub.Name,
		Slug:       sub.Slug,
		CreatedAt:  sub.CreatedAt,
	}
}

func toBrandResponse(brand model.Brand) dto.BrandResponse {
	return dto.BrandResponse{
		ID:        brand.ID,
		Name:      brand.Name,
		Slug:      brand.Slug,
		CreatedAt: brand.CreatedAt,
	}
}
