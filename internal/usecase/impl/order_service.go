package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultOrderPage    = 1
	defaultOrderPerPage = 20
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager  repository.TransactionManager
	orderRepo  repository.OrderRepository
	orderRules *service.OrderService
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	OrderRules *service.OrderService
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService. It receives all dependencies as interfaces.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		orderRules: params.OrderRules,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder converts the user's cart into an immutable order. The whole
// protocol (load cart, re-check every line against CURRENT product state,
// snapshot name/price, reserve stock, persist the order, clear the cart)
// runs inside one database transaction: either the order exists with its
// stock reserved and the cart empty, or nothing changed at all.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*usecase.OrderOutput, error) {
	uid, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	details, err := checkoutDetailsFromInput(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting checkout", slog.Int64("userID", input.UserID))

	var order *entity.Order
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()
		orderRepo := repoFactory.OrderRepo()

		cart, txErr := cartRepo.FindByUserID(ctx, uid)
		if errors.Is(txErr, repository.ErrCartNotFound) {
			return domainerrors.ErrCartEmpty
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to load cart")
		}

		// Re-load the current products; quantities validated at add-time may
		// be stale by now.
		lines := cart.Items()
		ids := make([]entity.ProductID, 0, len(lines))
		for _, line := range lines {
			ids = append(ids, line.ProductID)
		}
		products := map[entity.ProductID]entity.Product{}
		if len(ids) > 0 {
			products, txErr = productRepo.FindByIDs(ctx, ids)
			if txErr != nil {
				return errors.Wrap(txErr, "failed to load cart products")
			}
		}

		order, txErr = srv.orderRules.BuildFromCart(cart, products, *details)
		if txErr != nil {
			return txErr
		}

		// Reserve the stock line by line. The conditional update is the
		// atomic guard: two checkouts racing for the same units cannot both
		// get them, whatever the earlier validation saw.
		for _, item := range order.Items {
			txErr = productRepo.DecrementStockIfSufficient(ctx, item.ProductID, item.Quantity)
			if errors.Is(txErr, repository.ErrStockConditionFailed) {
				return domainerrors.ErrInsufficientStock.WithDetails("product " + item.ProductID.String() + " has insufficient stock")
			}
			if txErr != nil {
				return errors.Wrap(txErr, "failed to reserve stock")
			}
		}

		if txErr := orderRepo.Create(ctx, order); txErr != nil {
			return errors.Wrap(txErr, "failed to persist order")
		}

		if txErr := cartRepo.Clear(ctx, uid); txErr != nil {
			// The order insert above would commit without this clear; the
			// rollback that follows is what keeps the store consistent.
			srv.log(ctx).Error("Cart clear failed after order persistence, rolling back checkout",
				slog.Bool("critical", true),
				slog.Int64("userID", input.UserID),
				slog.Int64("orderID", order.ID.Int64()),
				slog.Any("error", txErr))

			return errors.Wrap(txErr, "failed to clear cart after order creation")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.publishOrderCreated(ctx, order)

	srv.log(ctx).Info("Checkout completed",
		slog.Int64("userID", input.UserID),
		slog.Int64("orderID", order.ID.Int64()),
		slog.Int64("totalAmount", order.TotalAmount().Value()))

	return toOrderOutput(order), nil
}

// GetOrder returns one of the caller's orders.
func (srv *orderService) GetOrder(ctx context.Context, userID, orderID int64) (*usecase.OrderOutput, error) {
	uid, err := entity.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	oid, err := entity.NewOrderID(orderID)
	if err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, oid)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.UserID != uid {
		return nil, domainerrors.ErrOrderOwnership
	}

	return toOrderOutput(order), nil
}

// ListOrders returns a page of the caller's order history, newest first.
func (srv *orderService) ListOrders(ctx context.Context, input *usecase.ListOrdersInput) (*usecase.ListOrdersOutput, error) {
	uid, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = defaultOrderPage
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultOrderPerPage
	}

	filter := repository.OrderFilter{}
	if input.Status != "" {
		status := entity.OrderStatus(input.Status)
		filter.Status = &status
	}
	pagination := repository.Pagination{Page: page, PerPage: perPage}

	orders, err := srv.orderRepo.FindByUserID(ctx, uid, filter, pagination)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}
	total, err := srv.orderRepo.CountByUserID(ctx, uid, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	outputs := make([]*usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, toOrderOutput(order))
	}

	return &usecase.ListOrdersOutput{
		Orders:  outputs,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// publishOrderCreated emits the post-commit event. Publishing is best-effort:
// the order is already durable, so a publish failure is logged, not returned.
func (srv *orderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	items := make([]service.OrderEventItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, service.OrderEventItem{
			ProductID:       item.ProductID.Int64(),
			ProductName:     item.ProductName,
			PriceAtPurchase: item.PriceAtPurchase.Value(),
			Quantity:        item.Quantity.Value(),
		})
	}

	event := &service.OrderCreatedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:     order.ID.Int64(),
		UserID:      order.UserID.Int64(),
		TotalAmount: order.TotalAmount().Value(),
		Items:       items,
	}

	if err := srv.publisher.PublishOrderCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order-created event",
			slog.Int64("orderID", order.ID.Int64()), slog.Any("error", err))
	}
}

func checkoutDetailsFromInput(input *usecase.CreateOrderInput) (*service.CheckoutDetails, error) {
	postalCode, err := entity.NewPostalCode(input.PostalCode)
	if err != nil {
		return nil, err
	}

	details := &service.CheckoutDetails{
		Shipping: entity.ShippingAddress{
			RecipientName: input.RecipientName,
			PostalCode:    postalCode,
			Prefecture:    input.Prefecture,
			City:          input.City,
			StreetAddress: input.StreetAddress,
		},
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
	}

	if input.ContactEmail != "" || input.ContactPhone != "" {
		contact := &entity.ContactInfo{Phone: input.ContactPhone}
		if input.ContactEmail != "" {
			email, err := entity.NewEmail(input.ContactEmail)
			if err != nil {
				return nil, err
			}
			contact.Email = email
		}
		details.Contact = contact
	}

	return details, nil
}
