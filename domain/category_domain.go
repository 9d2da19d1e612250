package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCategories  = "success get categories"
	MessageSuccessCreateCategory = "category created successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedCreateCategory = "failed to create category"

	ErrCategoryNotFound = errors.New("category not found")
)

type (
	CreateCategoryRequest struct {
		Title string `json:"title" form:"title" validate:"required"`
		Image string `json:"image" form:"image"`
	}

	CategoryResponse struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
