package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	txManager   *mockRepo.MockTransactionManager
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProductService(ProductServiceParams{
		TxManager:    txManager,
		ProductRepo:  productRepo,
		ProductRules: service.NewProductService(),
		Logger:       logger,
	})

	return productServiceFixtures{
		service:     svc,
		txManager:   txManager,
		productRepo: productRepo,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Name:     "Walking Shoes",
		Price:    4500,
		Stock:    20,
		Category: "shoes",
	}

	fx.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(ctx context.Context, product *entity.Product) {
			product.ID = mustProductID(t, 10)
		}).
		Return(nil)

	output, err := fx.service.CreateProduct(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), output.ID)
	assert.True(t, output.IsActive)
	assert.True(t, output.IsAvailable)
	assert.Equal(t, int64(4500), output.Price)
}

func TestProductService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Name:     "Walking Shoes",
		Price:    -1,
		Stock:    20,
		Category: "shoes",
	}

	output, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
}

func TestProductService_CreateProduct_EmptyName(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.CreateProductInput{
		Name:     "",
		Price:    4500,
		Stock:    20,
		Category: "shoes",
	}

	output, err := fx.service.CreateProduct(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
}

func TestProductService_UpdateStock_Success(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, true)
	input := &usecase.UpdateStockInput{ProductID: 10, Stock: 0}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)
			txProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, updated *entity.Product) {
					assert.Equal(t, 0, updated.Stock)
				}).
				Return(nil)

			return fn(factory)
		})

	output, err := fx.service.UpdateStock(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 0, output.Stock)
	assert.False(t, output.IsAvailable)
}

func TestProductService_UpdateStock_InactiveProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, false)
	input := &usecase.UpdateStockInput{ProductID: 10, Stock: 8}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)

			return fn(factory)
		})

	output, err := fx.service.UpdateStock(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInactiveStockUpdate)
}

func TestProductService_UpdateStock_ProductNotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	input := &usecase.UpdateStockInput{ProductID: 10, Stock: 8}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(nil, repository.ErrProductNotFound)

			return fn(factory)
		})

	output, err := fx.service.UpdateStock(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_SetProductActive_Reactivates(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, false)
	input := &usecase.SetProductActiveInput{ProductID: 10, Active: true}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)
			txProductRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, updated *entity.Product) {
					assert.True(t, updated.IsActive)
				}).
				Return(nil)

			return fn(factory)
		})

	output, err := fx.service.SetProductActive(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.IsActive)
	assert.True(t, output.IsAvailable)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindByID(ctx, mustProductID(t, 10)).
		Return(nil, repository.ErrProductNotFound)

	output, err := fx.service.GetProduct(ctx, 10)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProducts_Defaults(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, true)
	criteria := repository.ProductCriteria{}
	sort := repository.ProductSort{Field: repository.ProductSortByCreatedAt, Direction: repository.SortDescending}
	page := repository.Pagination{Page: 1, PerPage: 20}

	fx.productRepo.EXPECT().
		FindByCriteria(ctx, criteria, sort, page).
		Return([]entity.Product{product}, nil)
	fx.productRepo.EXPECT().
		CountByCriteria(ctx, criteria).
		Return(int64(1), nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.PerPage)
	require.Len(t, output.Products, 1)
}

func TestProductService_ListProducts_CategoryAndSort(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	category, err := entity.NewProductCategory("shoes")
	require.NoError(t, err)
	criteria := repository.ProductCriteria{Category: &category, ActiveOnly: true, Keyword: "walking"}
	sort := repository.ProductSort{Field: repository.ProductSortByPrice, Direction: repository.SortAscending}
	page := repository.Pagination{Page: 3, PerPage: 10}

	fx.productRepo.EXPECT().
		FindByCriteria(ctx, criteria, sort, page).
		Return([]entity.Product{}, nil)
	fx.productRepo.EXPECT().
		CountByCriteria(ctx, criteria).
		Return(int64(0), nil)

	output, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{
		Category:   "shoes",
		ActiveOnly: true,
		Keyword:    "walking",
		SortBy:     "price",
		SortDir:    "asc",
		Page:       3,
		PerPage:    10,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.Total)
	assert.Empty(t, output.Products)
}
