package category

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"

	"github.com/google/uuid"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.Category{
		ID:       uuid.New(),
		Title:    req.Title,
		ImageURL: req.Image,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{
		ID:        category.ID.String(),
		Title:     category.Title,
		ImageURL:  category.ImageURL,
		CreatedAt: category.CreatedAt,
	}, nil
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, domain.CategoryResponse{
			ID:        c.ID.String(),
			Title:     c.Title,
			ImageURL:  c.ImageURL,
			CreatedAt: c.CreatedAt,
		})
	}
	return result, nil
}
