package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"eventhub/internal/delivery/http/helpers"
	"eventhub/internal/domain"
)

// CategoryController translates HTTP requests into category service calls.
type CategoryController struct {
	Logger  *slog.Logger
	Service domain.CategoryService
}

func NewCategoryController(logger *slog.Logger, svc domain.CategoryService) *CategoryController {
	return &CategoryController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateCategoryRequest is the request body for POST /categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate implements helpers.Validator.
func (c *CreateCategoryRequest) Validate() []string {
	var errs []string
	if l := utf8.RuneCountInString(c.Name); l < 3 || l > 50 {
		errs = append(errs, "name must be between 3 and 50 characters")
	}
	if utf8.RuneCountInString(c.Description) > 300 {
		errs = append(errs, "description must not exceed 300 characters")
	}
	return errs
}

// CreateCategory godoc
// @Summary Create a new category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body CreateCategoryRequest true "Category data"
// @Success 201 {object} helpers.APIResponse "data contains the created category"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /categories [post]
func (c *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.CreateCategory(r.Context(), domain.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		c.respondError(w, r, err, "failed to create category")
		return
	}
	helpers.WriteSuccess(w, http.StatusCreated, "Category created successfully", category)
}

// ListCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param sortBy query string false "Sort field (name)"
// @Param order query string false "Sort order (asc|desc), default asc"
// @Success 200 {object} helpers.APIResponse "data contains the categories, count the number returned"
// @Failure 500 {object} helpers.APIResponse
// @Router /categories [get]
func (c *CategoryController) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.Service.ListCategories(r.Context(), helpers.ParseSortParams(r))
	if err != nil {
		c.respondError(w, r, err, "failed to fetch categories")
		return
	}
	helpers.WriteList(w, categories, len(categories))
}

// GetCategoryByID godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} helpers.APIResponse "data contains the category"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /categories/{id} [get]
func (c *CategoryController) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	category, err := c.Service.GetCategoryByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("category with id %s not found", id))
			return
		}
		c.respondError(w, r, err, "failed to fetch category")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "", category)
}

// UpdateCategoryRequest is the request body for PUT /categories/{id}.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Validate implements helpers.Validator.
func (u *UpdateCategoryRequest) Validate() []string {
	var errs []string
	if u.Name == nil && u.Description == nil {
		return []string{"at least one field must be provided"}
	}
	if u.Name != nil {
		if l := utf8.RuneCountInString(*u.Name); l < 3 || l > 50 {
			errs = append(errs, "name must be between 3 and 50 characters")
		}
	}
	if u.Description != nil && utf8.RuneCountInString(*u.Description) > 300 {
		errs = append(errs, "description must not exceed 300 characters")
	}
	return errs
}

// UpdateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param category body UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} helpers.APIResponse "data contains the updated category"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /categories/{id} [put]
func (c *CategoryController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateCategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category, err := c.Service.UpdateCategory(r.Context(), id, domain.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("category with id %s not found", id))
			return
		}
		c.respondError(w, r, err, "failed to update category")
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	found, err := c.Service.DeleteCategory(r.Context(), id)
	if err != nil {
		c.respondError(w, r, err, "failed to delete category")
		return
	}
	if !found {
		helpers.WriteError(w, http.StatusNotFound, fmt.Sprintf("category with id %s not found", id))
		return
	}
	helpers.WriteSuccess(w, http.StatusOK, "Category deleted successfully", nil)
}

func (c *CategoryController) respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteError(w, http.StatusInternalServerError, fallback)
}
