package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "Recipe created successfully!"
	MessageSuccessAddRecipe       = "Recipe added successfully!"
	MessageSuccessUpdateRecipe    = "Recipe updated successfully!"
	MessageSuccessDeleteRecipe    = "Recipe deleted successfully!"
	MessageSuccessToggleFavorite  = "recipe favorite toggled"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedToggleFavorite  = "failed to toggle favorite"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrPriceInvalid     = errors.New("price must be a number")
	ErrTitleRequired    = errors.New("title is required")
	ErrCategoryRequired = errors.New("category is required")
	ErrCategoryInvalid  = errors.New("category does not exist")
)

type (
	// CreateRecipeRequest is the authenticated form flow. Price arrives as a
	// string and is parsed at the boundary.
	CreateRecipeRequest struct {
		Title       string `json:"title" form:"title" validate:"required"`
		Price       string `json:"price" form:"price"`
		Image       string `json:"image" form:"image"`
		Categories  string `json:"categories" form:"categories"`
		CategoryID  string `json:"category_id" form:"category_id" validate:"required"`
		Ingredients string `json:"ingredients" form:"ingredients" validate:"required"`
		Steps       string `json:"steps" form:"steps" validate:"required"`
	}

	// AddRecipeRequest is the open JSON flow carried over from the API
	// variant. No category, no price.
	AddRecipeRequest struct {
		Name        string `json:"name" validate:"required"`
		Ingredients string `json:"ingredients" validate:"required"`
		Steps       string `json:"steps" validate:"required"`
	}

	UpdateRecipeRequest struct {
		Name        string `json:"name" validate:"required"`
		Ingredients string `json:"ingredients" validate:"required"`
		Steps       string `json:"steps" validate:"required"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `form:"image" validate:"required"`
	}

	RecipeResponse struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Price       int       `json:"price"`
		ImageURL    string    `json:"image_url,omitempty"`
		Categories  string    `json:"categories,omitempty"`
		CategoryID  string    `json:"category_id,omitempty"`
		Ingredients string    `json:"ingredients"`
		Steps       string    `json:"steps"`
		IsFavorite  bool      `json:"is_favorite"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ToggleFavoriteResponse struct {
		ID         string `json:"id"`
		IsFavorite bool   `json:"is_favorite"`
	}

	NewRecipeFormResponse struct {
		Categories []CategoryResponse `json:"categories"`
	}
)
