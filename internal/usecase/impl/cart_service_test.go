package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewCartService(CartServiceParams{
		TxManager:   txManager,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		CartRules:   service.NewCartService(),
		Logger:      logger,
	})

	return cartServiceFixtures{
		service:     svc,
		txManager:   txManager,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func restoredCart(t *testing.T, userID int64, lines map[int64]int) *entity.Cart {
	t.Helper()
	now := time.Now()
	items := make([]entity.CartItem, 0, len(lines))
	for productID, quantity := range lines {
		items = append(items, entity.CartItem{
			ProductID: mustProductID(t, productID),
			Quantity:  mustQuantity(t, quantity),
			AddedAt:   now,
		})
	}

	return entity.RestoreCart(mustUserID(t, userID), items, now, now)
}

func TestCartService_GetCart_EmptyWhenNoCartExists(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, mustUserID(t, 1)).
		Return(nil, repository.ErrCartNotFound)

	output, err := fx.service.GetCart(ctx, 1)

	require.NoError(t, err)
	assert.True(t, output.IsEmpty)
	assert.Empty(t, output.Items)
	assert.Equal(t, int64(0), output.TotalAmount)
}

func TestCartService_GetCart_EnrichedWithCatalogState(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	cart := restoredCart(t, 1, map[int64]int{10: 2})
	product := testProduct(t, 10, 500, 5, true)

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, mustUserID(t, 1)).
		Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []entity.ProductID{mustProductID(t, 10)}).
		Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)

	output, err := fx.service.GetCart(ctx, 1)

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, int64(500), output.Items[0].UnitPrice)
	assert.Equal(t, int64(1000), output.Items[0].Subtotal)
	assert.True(t, output.Items[0].IsAvailable)
	assert.Equal(t, int64(1000), output.TotalAmount)
}

func TestCartService_GetCart_MissingProductShownUnavailable(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	cart := restoredCart(t, 1, map[int64]int{10: 2})

	fx.cartRepo.EXPECT().
		FindByUserID(ctx, mustUserID(t, 1)).
		Return(cart, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []entity.ProductID{mustProductID(t, 10)}).
		Return(map[entity.ProductID]entity.Product{}, nil)

	output, err := fx.service.GetCart(ctx, 1)

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.False(t, output.Items[0].IsAvailable)
	assert.Equal(t, int64(0), output.TotalAmount)
}

func TestCartService_AddProductToCart_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 10, true)
	input := &usecase.AddCartItemInput{UserID: 1, ProductID: 10, Quantity: 3}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 3}), nil)
			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)
			txCartRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Cart")).
				Run(func(ctx context.Context, cart *entity.Cart) {
					item, ok := cart.ItemFor(mustProductID(t, 10))
					require.True(t, ok)
					assert.Equal(t, 6, item.Quantity.Value())
				}).
				Return(nil)

			return fn(factory)
		})
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []entity.ProductID{mustProductID(t, 10)}).
		Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)

	output, err := fx.service.AddProductToCart(ctx, input)

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 6, output.Items[0].Quantity)
}

func TestCartService_AddProductToCart_CreatesCartLazily(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, true)
	input := &usecase.AddCartItemInput{UserID: 1, ProductID: 10, Quantity: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(nil, repository.ErrCartNotFound)
			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)
			txCartRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Cart")).
				Return(nil)

			return fn(factory)
		})
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []entity.ProductID{mustProductID(t, 10)}).
		Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)

	output, err := fx.service.AddProductToCart(ctx, input)

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 2, output.Items[0].Quantity)
}

func TestCartService_AddProductToCart_MergedTotalExceedsStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	// 6 in the cart plus 6 more against a stock of 10: each addition fits
	// alone, the merged line does not.
	product := testProduct(t, 10, 500, 10, true)
	input := &usecase.AddCartItemInput{UserID: 1, ProductID: 10, Quantity: 6}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 6}), nil)
			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)

			return fn(factory)
		})

	output, err := fx.service.AddProductToCart(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestCartService_AddProductToCart_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	input := &usecase.AddCartItemInput{UserID: 1, ProductID: 10, Quantity: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(nil, repository.ErrCartNotFound)
			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(nil, repository.ErrProductNotFound)

			return fn(factory)
		})

	output, err := fx.service.AddProductToCart(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddProductToCart_InactiveProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, false)
	input := &usecase.AddCartItemInput{UserID: 1, ProductID: 10, Quantity: 1}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(nil, repository.ErrCartNotFound)
			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)

			return fn(factory)
		})

	output, err := fx.service.AddProductToCart(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotAvailable)
}

func TestCartService_UpdateCartItem_SetsAbsoluteQuantity(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	// Stock dropped to 3 since the line was added with 5. Setting the line
	// to 2 is still legal; the check is against the new absolute value.
	product := testProduct(t, 10, 500, 3, true)
	input := &usecase.UpdateCartItemInput{UserID: 1, ProductID: 10, Quantity: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 5}), nil)
			txProductRepo.EXPECT().
				FindByID(ctx, mustProductID(t, 10)).
				Return(&product, nil)
			txCartRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Cart")).
				Run(func(ctx context.Context, cart *entity.Cart) {
					item, ok := cart.ItemFor(mustProductID(t, 10))
					require.True(t, ok)
					assert.Equal(t, 2, item.Quantity.Value())
				}).
				Return(nil)

			return fn(factory)
		})
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []entity.ProductID{mustProductID(t, 10)}).
		Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)

	output, err := fx.service.UpdateCartItem(ctx, input)

	require.NoError(t, err)
	require.Len(t, output.Items, 1)
	assert.Equal(t, 2, output.Items[0].Quantity)
}

func TestCartService_UpdateCartItem_NoCartMeansNoLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	input := &usecase.UpdateCartItemInput{UserID: 1, ProductID: 10, Quantity: 2}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(nil, repository.ErrCartNotFound)

			return fn(factory)
		})

	output, err := fx.service.UpdateCartItem(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveCartItem_LastLineLeavesEmptyCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	input := &usecase.RemoveCartItemInput{UserID: 1, ProductID: 10}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 2}), nil)
			txCartRepo.EXPECT().
				Save(ctx, mock.AnythingOfType("*entity.Cart")).
				Run(func(ctx context.Context, cart *entity.Cart) {
					assert.True(t, cart.IsEmpty())
				}).
				Return(nil)

			return fn(factory)
		})

	output, err := fx.service.RemoveCartItem(ctx, input)

	require.NoError(t, err)
	assert.True(t, output.IsEmpty)
	assert.Empty(t, output.Items)
}

func TestCartService_RemoveCartItem_MissingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	input := &usecase.RemoveCartItemInput{UserID: 1, ProductID: 99}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 2}), nil)

			return fn(factory)
		})

	output, err := fx.service.RemoveCartItem(ctx, input)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		Clear(ctx, mustUserID(t, 1)).
		Return(nil)

	err := fx.service.ClearCart(ctx, 1)

	require.NoError(t, err)
}
