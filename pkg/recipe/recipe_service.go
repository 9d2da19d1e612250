package recipe

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"Recipe-Catalog/internal/utils/storage"
	"Recipe-Catalog/pkg/category"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id string) error
		ToggleFavorite(ctx context.Context, id string) (domain.ToggleFavoriteResponse, error)
		UploadRecipeImage(ctx context.Context, id string, image *multipart.FileHeader) (string, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		s3                 storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, categoryRepository category.CategoryRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		s3:                 s3,
	}
}

// fetchRecipe resolves a path id to a row. An id that is not a UUID cannot
// reference any row, so it is answered the same way as a lookup miss.
func (s *recipeService) fetchRecipe(ctx context.Context, id string) (*entities.Recipe, error) {
	recipeID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:          recipe.ID.String(),
		Title:       recipe.Title,
		Price:       recipe.Price,
		ImageURL:    recipe.ImageURL,
		Categories:  recipe.Categories,
		Ingredients: recipe.Ingredients,
		Steps:       recipe.Steps,
		IsFavorite:  recipe.IsFavorite,
		CreatedAt:   recipe.CreatedAt,
	}
	if recipe.CategoryID != nil {
		res.CategoryID = recipe.CategoryID.String()
	}
	return res
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.fetchRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

// CreateRecipe is the authenticated form flow. Price and category_id arrive
// as strings and are parsed here before the row is built.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	price := 0
	if strings.TrimSpace(req.Price) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(req.Price))
		if err != nil {
			return domain.RecipeResponse{}, domain.ErrPriceInvalid
		}
		price = parsed
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrCategoryInvalid
	}
	if _, err := s.categoryRepository.GetCategoryByID(ctx, categoryID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrCategoryInvalid
		}
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Title:       req.Title,
		Price:       price,
		ImageURL:    req.Image,
		Categories:  req.Categories,
		CategoryID:  &categoryID,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.RecipeResponse{}, domain.ErrCategoryInvalid
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

// AddRecipe is the open JSON flow: name, ingredients and steps only.
func (s *recipeService) AddRecipe(ctx context.Context, req domain.AddRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		ID:          uuid.New(),
		Title:       req.Name,
		Ingredients: req.Ingredients,
		Steps:       req.Steps,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

// UpdateRecipe overwrites the three editable fields.
func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) error {
	recipe, err := s.fetchRecipe(ctx, id)
	if err != nil {
		return err
	}

	recipe.Title = req.Name
	recipe.Ingredients = req.Ingredients
	recipe.Steps = req.Steps

	return s.recipeRepository.SaveRecipe(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	recipe, err := s.fetchRecipe(ctx, id)
	if err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, recipe)
}

// ToggleFavorite flips the flag; calling it twice restores the original state.
func (s *recipeService) ToggleFavorite(ctx context.Context, id string) (domain.ToggleFavoriteResponse, error) {
	recipe, err := s.fetchRecipe(ctx, id)
	if err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}

	recipe.IsFavorite = !recipe.IsFavorite
	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return domain.ToggleFavoriteResponse{}, err
	}

	return domain.ToggleFavoriteResponse{
		ID:         recipe.ID.String(),
		IsFavorite: recipe.IsFavorite,
	}, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, id string, image *multipart.FileHeader) (string, error) {
	recipe, err := s.fetchRecipe(ctx, id)
	if err != nil {
		return "", err
	}

	var objectKey string
	var uploadErr error
	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())

	if recipe.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return "", uploadErr
	}

	recipe.ImageURL = s.s3.GetLink(objectKey)
	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return "", err
	}
	return recipe.ImageURL, nil
}
