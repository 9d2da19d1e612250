package recipe

import (
	"Recipe-Catalog/domain"
	"Recipe-Catalog/entities"
	"context"
	"mime/multipart"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) UploadFile(name string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	args := m.Called(name, file, dir)
	return args.String(0), args.Error(1)
}

func (m *mockS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedTypes ...string) (string, error) {
	args := m.Called(objectKey, file)
	return args.String(0), args.Error(1)
}

func (m *mockS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *mockS3) GetLink(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *mockS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

func newTestService() (RecipeService, *mockRecipeRepository, *mockCategoryRepository, *mockS3) {
	recipes := new(mockRecipeRepository)
	categories := new(mockCategoryRepository)
	s3 := new(mockS3)
	return NewRecipeService(recipes, categories, s3), recipes, categories, s3
}

func TestGetRecipeDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("NonUUIDPathIsNotFound", func(t *testing.T) {
		svc, recipes, _, _ := newTestService()

		_, err := svc.GetRecipeDetail(ctx, "9999")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		recipes.AssertNotCalled(t, "GetRecipeByID", mock.Anything, mock.Anything)
	})

	t.Run("MissingRowIsNotFound", func(t *testing.T) {
		svc, recipes, _, _ := newTestService()
		id := uuid.New()
		recipes.On("GetRecipeByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetRecipeDetail(ctx, id.String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("Found", func(t *testing.T) {
		svc, recipes, _, _ := newTestService()
		id := uuid.New()
		recipes.On("GetRecipeByID", ctx, id).Return(&entities.Recipe{ID: id, Title: "Soup"}, nil)

		res, err := svc.GetRecipeDetail(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, "Soup", res.Title)
	})
}

func TestCreateRecipe(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	validRequest := func() domain.CreateRecipeRequest {
		return domain.CreateRecipeRequest{
			Title:       "Soup",
			Price:       "120",
			CategoryID:  categoryID.String(),
			Ingredients: "water,salt",
			Steps:       "boil",
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, recipes, categories, _ := newTestService()
		categories.On("GetCategoryByID", ctx, categoryID.String()).Return(&entities.Category{ID: categoryID, Title: "Starters"}, nil)
		recipes.On("CreateRecipe", ctx, mock.AnythingOfType("*entities.Recipe")).Return(nil)

		res, err := svc.CreateRecipe(ctx, validRequest())
		require.NoError(t, err)
		assert.Equal(t, "Soup", res.Title)
		assert.Equal(t, 120, res.Price)
		assert.Equal(t, categoryID.String(), res.CategoryID)
		assert.False(t, res.IsFavorite)
	})

	t.Run("MalformedPrice", func(t *testing.T) {
		svc, recipes, _, _ := newTestService()
		req := validRequest()
		req.Price = "cheap"

		_, err := svc.CreateRecipe(ctx, req)
		assert.ErrorIs(t, err, domain.ErrPriceInvalid)
		recipes.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		svc, recipes, categories, _ := newTestService()
		categories.On("GetCategoryByID", ctx, categoryID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.CreateRecipe(ctx, validRequest())
		assert.ErrorIs(t, err, domain.ErrCategoryInvalid)
		recipes.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
	})
}

func TestAddRecipeJSONFlow(t *testing.T) {
	ctx := context.Background()
	svc, recipes, _, _ := newTestService()
	recipes.On("CreateRecipe", ctx, mock.AnythingOfType("*entities.Recipe")).Return(nil).Run(func(args mock.Arguments) {
		created := args.Get(1).(*entities.Recipe)
		assert.Equal(t, "Soup", created.Title)
		assert.Nil(t, created.CategoryID)
	})

	res, err := svc.AddRecipe(ctx, domain.AddRecipeRequest{Name: "Soup", Ingredients: "water,salt", Steps: "boil"})
	require.NoError(t, err)
	assert.Equal(t, "Soup", res.Title)
	recipes.AssertExpectations(t)
}

func TestUpdateRecipeOverwritesEditableFields(t *testing.T) {
	ctx := context.Background()
	svc, recipes, _, _ := newTestService()
	id := uuid.New()
	existing := &entities.Recipe{ID: id, Title: "Old", Ingredients: "old", Steps: "old", Price: 50}

	recipes.On("GetRecipeByID", ctx, id).Return(existing, nil)
	recipes.On("SaveRecipe", ctx, existing).Return(nil)

	err := svc.UpdateRecipe(ctx, id.String(), domain.UpdateRecipeRequest{Name: "New", Ingredients: "new", Steps: "new"})
	require.NoError(t, err)
	assert.Equal(t, "New", existing.Title)
	assert.Equal(t, "new", existing.Ingredients)
	assert.Equal(t, "new", existing.Steps)
	assert.Equal(t, 50, existing.Price, "price is not an editable field here")
}

func TestDeleteRecipe(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		svc, recipes, _, _ := newTestService()
		id := uuid.New()
		recipes.On("GetRecipeByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

		err := svc.DeleteRecipe(ctx, id.String())
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		recipes.AssertNotCalled(t, "DeleteRecipe", mock.Anything, mock.Anything)
	})

	t.Run("DeletesFetchedRow", func(t *testing.T) {
		svc, recipes, _, _ := newTestService()
		id := uuid.New()
		existing := &entities.Recipe{ID: id, Title: "Soup"}
		recipes.On("GetRecipeByID", ctx, id).Return(existing, nil)
		recipes.On("DeleteRecipe", ctx, existing).Return(nil)

		require.NoError(t, svc.DeleteRecipe(ctx, id.String()))
		recipes.AssertExpectations(t)
	})
}

func TestToggleFavorite(t *testing.T) {
	ctx := context.Background()
	svc, recipes, _, _ := newTestService()
	id := uuid.New()
	existing := &entities.Recipe{ID: id, Title: "Soup", IsFavorite: false}

	recipes.On("GetRecipeByID", ctx, id).Return(existing, nil)
	recipes.On("SaveRecipe", ctx, existing).Return(nil)

	first, err := svc.ToggleFavorite(ctx, id.String())
	require.NoError(t, err)
	assert.True(t, first.IsFavorite, "one toggle flips")

	second, err := svc.ToggleFavorite(ctx, id.String())
	require.NoError(t, err)
	assert.False(t, second.IsFavorite, "two toggles restore the original state")
}
