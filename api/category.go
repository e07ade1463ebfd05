package api

import (
	"budget-tracker/database"
	"budget-tracker/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the shared category registry.
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

type CategoryCreateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Groceries"`
}

// CategoryResponse is the {id, name} projection returned by the registry.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// List returns all categories
// @Summary List categories
// @Description All categories as {id, name} pairs. No filtering, no pagination.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]CategoryResponse} "categories"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var cats []models.Category
	if err := database.DB.Order("id ASC").Find(&cats).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing categories failed"))
		return
	}
	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	Success(c, out)
}

// Create inserts a new category
// @Summary Create category
// @Description Insert a new category. Duplicate names are allowed.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "category"
// @Success 201 {object} Response{data=CategoryResponse} "created"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, BindingErrorMessage(err))
		return
	}

	cat := models.Category{Name: req.Name}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating category failed"))
		return
	}
	Created(c, CategoryResponse{ID: cat.ID, Name: cat.Name})
}
