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
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		OrderRepo:  orderRepo,
		OrderRules: service.NewOrderService(),
		Publisher:  publisher,
		Logger:     logger,
	})

	return orderServiceFixtures{
		service:   svc,
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func validCheckoutInput(userID int64) *usecase.CreateOrderInput {
	return &usecase.CreateOrderInput{
		UserID:        userID,
		RecipientName: "Hanako Yamada",
		PostalCode:    "100-0001",
		Prefecture:    "Tokyo",
		City:          "Chiyoda",
		StreetAddress: "1-1-1 Chiyoda",
		ContactEmail:  "hanako@example.com",
		PaymentMethod: "credit_card",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	productA := testProduct(t, 10, 500, 5, true)
	productB := testProduct(t, 11, 300, 5, true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 2, 11: 1}), nil)
			txProductRepo.EXPECT().
				FindByIDs(ctx, mock.AnythingOfType("[]entity.ProductID")).
				Return(map[entity.ProductID]entity.Product{
					productA.ID: productA,
					productB.ID: productB,
				}, nil)
			txProductRepo.EXPECT().
				DecrementStockIfSufficient(ctx, productA.ID, mustQuantity(t, 2)).
				Return(nil)
			txProductRepo.EXPECT().
				DecrementStockIfSufficient(ctx, productB.ID, mustQuantity(t, 1)).
				Return(nil)
			txOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = mustOrderID(t, 42)
				}).
				Return(nil)
			txCartRepo.EXPECT().
				Clear(ctx, mustUserID(t, 1)).
				Return(nil)

			return fn(factory)
		})
	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Run(func(ctx context.Context, event *service.OrderCreatedEvent) {
			assert.Equal(t, int64(42), event.OrderID)
			assert.Equal(t, int64(1300), event.TotalAmount)
			assert.Len(t, event.Items, 2)
		}).
		Return(nil)

	output, err := fx.service.CreateOrder(ctx, validCheckoutInput(1))

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.ID)
	assert.Equal(t, int64(1300), output.TotalAmount)
	assert.Equal(t, "pending", output.Status)
	require.Len(t, output.Items, 2)
}

func TestOrderService_CreateOrder_NoCartIsEmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(nil, repository.ErrCartNotFound)

			return fn(factory)
		})

	output, err := fx.service.CreateOrder(ctx, validCheckoutInput(1))

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestOrderService_CreateOrder_StaleLineFailsWholeCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	// The second line passed validation at add-time, but the product sold
	// down to 1 since. The whole checkout aborts; no stock moves.
	productA := testProduct(t, 10, 500, 5, true)
	productB := testProduct(t, 11, 300, 1, true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 2, 11: 3}), nil)
			txProductRepo.EXPECT().
				FindByIDs(ctx, mock.AnythingOfType("[]entity.ProductID")).
				Return(map[entity.ProductID]entity.Product{
					productA.ID: productA,
					productB.ID: productB,
				}, nil)

			return fn(factory)
		})

	output, err := fx.service.CreateOrder(ctx, validCheckoutInput(1))

	assert.Nil(t, output)
	assertErrorCode(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_CreateOrder_LosesStockRace(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	// Validation saw enough stock, but a concurrent checkout got the units
	// first. The conditional decrement is the authority.
	product := testProduct(t, 10, 500, 5, true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 2}), nil)
			txProductRepo.EXPECT().
				FindByIDs(ctx, mock.AnythingOfType("[]entity.ProductID")).
				Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)
			txProductRepo.EXPECT().
				DecrementStockIfSufficient(ctx, product.ID, mustQuantity(t, 2)).
				Return(repository.ErrStockConditionFailed)

			return fn(factory)
		})

	output, err := fx.service.CreateOrder(ctx, validCheckoutInput(1))

	assert.Nil(t, output)
	assertErrorCode(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_CreateOrder_CartClearFailureAbortsCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 1}), nil)
			txProductRepo.EXPECT().
				FindByIDs(ctx, mock.AnythingOfType("[]entity.ProductID")).
				Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)
			txProductRepo.EXPECT().
				DecrementStockIfSufficient(ctx, product.ID, mustQuantity(t, 1)).
				Return(nil)
			txOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(nil)
			txCartRepo.EXPECT().
				Clear(ctx, mustUserID(t, 1)).
				Return(errors.New("connection reset"))

			return fn(factory)
		})

	output, err := fx.service.CreateOrder(ctx, validCheckoutInput(1))

	assert.Nil(t, output)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cart after order creation")
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	product := testProduct(t, 10, 500, 5, true)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txCartRepo := mockRepo.NewMockCartRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txOrderRepo := mockRepo.NewMockOrderRepository(t)

			factory.EXPECT().CartRepo().Return(txCartRepo)
			factory.EXPECT().ProductRepo().Return(txProductRepo)
			factory.EXPECT().OrderRepo().Return(txOrderRepo)

			txCartRepo.EXPECT().
				FindByUserID(ctx, mustUserID(t, 1)).
				Return(restoredCart(t, 1, map[int64]int{10: 1}), nil)
			txProductRepo.EXPECT().
				FindByIDs(ctx, mock.AnythingOfType("[]entity.ProductID")).
				Return(map[entity.ProductID]entity.Product{product.ID: product}, nil)
			txProductRepo.EXPECT().
				DecrementStockIfSufficient(ctx, product.ID, mustQuantity(t, 1)).
				Return(nil)
			txOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = mustOrderID(t, 7)
				}).
				Return(nil)
			txCartRepo.EXPECT().
				Clear(ctx, mustUserID(t, 1)).
				Return(nil)

			return fn(factory)
		})
	fx.publisher.EXPECT().
		PublishOrderCreated(ctx, mock.AnythingOfType("*service.OrderCreatedEvent")).
		Return(errors.New("broker unavailable"))

	output, err := fx.service.CreateOrder(ctx, validCheckoutInput(1))

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.ID)
}

func TestOrderService_CreateOrder_InvalidPostalCode(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	input := validCheckoutInput(1)
	input.PostalCode = "1000001"

	output, err := fx.service.CreateOrder(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := testOrder(t, 42, 1)

	fx.orderRepo.EXPECT().
		FindByID(ctx, mustOrderID(t, 42)).
		Return(order, nil)

	output, err := fx.service.GetOrder(ctx, 1, 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), output.ID)
}

func TestOrderService_GetOrder_WrongOwner(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := testOrder(t, 42, 2)

	fx.orderRepo.EXPECT().
		FindByID(ctx, mustOrderID(t, 42)).
		Return(order, nil)

	output, err := fx.service.GetOrder(ctx, 1, 42)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderOwnership)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindByID(ctx, mustOrderID(t, 42)).
		Return(nil, repository.ErrOrderNotFound)

	output, err := fx.service.GetOrder(ctx, 1, 42)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_DefaultsPagination(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	order := testOrder(t, 42, 1)

	fx.orderRepo.EXPECT().
		FindByUserID(ctx, mustUserID(t, 1), repository.OrderFilter{}, repository.Pagination{Page: 1, PerPage: 20}).
		Return([]*entity.Order{order}, nil)
	fx.orderRepo.EXPECT().
		CountByUserID(ctx, mustUserID(t, 1), repository.OrderFilter{}).
		Return(int64(1), nil)

	output, err := fx.service.ListOrders(ctx, &usecase.ListOrdersInput{UserID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 20, output.PerPage)
	require.Len(t, output.Orders, 1)
}

func TestOrderService_ListOrders_StatusFilter(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	status := entity.OrderStatusPending
	filter := repository.OrderFilter{Status: &status}

	fx.orderRepo.EXPECT().
		FindByUserID(ctx, mustUserID(t, 1), filter, repository.Pagination{Page: 2, PerPage: 5}).
		Return([]*entity.Order{}, nil)
	fx.orderRepo.EXPECT().
		CountByUserID(ctx, mustUserID(t, 1), filter).
		Return(int64(0), nil)

	output, err := fx.service.ListOrders(ctx, &usecase.ListOrdersInput{
		UserID:  1,
		Status:  "pending",
		Page:    2,
		PerPage: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), output.Total)
	assert.Empty(t, output.Orders)
}
