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

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	cartRules   *service.CartService
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	CartRules   *service.CartService
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService. It receives all dependencies as interfaces.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		cartRules:   params.CartRules,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart enriched with current catalog data.
// A user who has never added anything sees an empty cart, not an error.
func (srv *cartService) GetCart(ctx context.Context, userID int64) (*usecase.CartOutput, error) {
	uid, err := entity.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	cart, err := srv.cartRepo.FindByUserID(ctx, uid)
	if errors.Is(err, repository.ErrCartNotFound) {
		cart = entity.NewCart(uid)
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	return srv.buildOutput(ctx, cart)
}

// AddProductToCart merges the requested quantity into the user's cart,
// creating the cart lazily on first add. The read-validate-write sequence
// runs in one transaction so concurrent adds cannot lose updates.
func (srv *cartService) AddProductToCart(ctx context.Context, input *usecase.AddCartItemInput) (*usecase.CartOutput, error) {
	uid, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	pid, err := entity.NewProductID(input.ProductID)
	if err != nil {
		return nil, err
	}
	quantity, err := entity.NewQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		var txErr error
		cart, txErr = cartRepo.FindByUserID(ctx, uid)
		if errors.Is(txErr, repository.ErrCartNotFound) {
			cart = entity.NewCart(uid)
		} else if txErr != nil {
			return errors.Wrap(txErr, "failed to find cart")
		}

		product, txErr := productRepo.FindByID(ctx, pid)
		if errors.Is(txErr, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find product")
		}

		if txErr := srv.cartRules.AddProductToCart(cart, *product, quantity); txErr != nil {
			return txErr
		}

		return cartRepo.Save(ctx, cart)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to add product to cart",
			slog.Int64("userID", input.UserID), slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	return srv.buildOutput(ctx, cart)
}

// UpdateCartItem replaces a line's quantity with a new absolute value.
func (srv *cartService) UpdateCartItem(ctx context.Context, input *usecase.UpdateCartItemInput) (*usecase.CartOutput, error) {
	uid, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	pid, err := entity.NewProductID(input.ProductID)
	if err != nil {
		return nil, err
	}
	quantity, err := entity.NewQuantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		productRepo := repoFactory.ProductRepo()

		var txErr error
		cart, txErr = cartRepo.FindByUserID(ctx, uid)
		if errors.Is(txErr, repository.ErrCartNotFound) {
			return domainerrors.ErrCartItemNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find cart")
		}

		product, txErr := productRepo.FindByID(ctx, pid)
		if errors.Is(txErr, repository.ErrProductNotFound) {
			return domainerrors.ErrCartItemNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find product")
		}

		if txErr := srv.cartRules.UpdateCartItem(cart, *product, quantity); txErr != nil {
			return txErr
		}

		return cartRepo.Save(ctx, cart)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update cart item",
			slog.Int64("userID", input.UserID), slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	return srv.buildOutput(ctx, cart)
}

// RemoveCartItem deletes a line. Removing the last line empties the cart
// without deleting it.
func (srv *cartService) RemoveCartItem(ctx context.Context, input *usecase.RemoveCartItemInput) (*usecase.CartOutput, error) {
	uid, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	pid, err := entity.NewProductID(input.ProductID)
	if err != nil {
		return nil, err
	}

	var cart *entity.Cart
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		var txErr error
		cart, txErr = cartRepo.FindByUserID(ctx, uid)
		if errors.Is(txErr, repository.ErrCartNotFound) {
			return domainerrors.ErrCartItemNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find cart")
		}

		if txErr := srv.cartRules.RemoveProductFromCart(cart, pid); txErr != nil {
			return txErr
		}

		return cartRepo.Save(ctx, cart)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to remove cart item",
			slog.Int64("userID", input.UserID), slog.Int64("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	return srv.buildOutput(ctx, cart)
}

// ClearCart removes every line from the user's cart.
func (srv *cartService) ClearCart(ctx context.Context, userID int64) error {
	uid, err := entity.NewUserID(userID)
	if err != nil {
		return err
	}

	if err := srv.cartRepo.Clear(ctx, uid); err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.Int64("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func (srv *cartService) buildOutput(ctx context.Context, cart *entity.Cart) (*usecase.CartOutput, error) {
	items := cart.Items()
	ids := make([]entity.ProductID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products := map[entity.ProductID]entity.Product{}
	if len(ids) > 0 {
		var err error
		products, err = srv.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load cart products")
		}
	}

	return toCartOutput(cart, products), nil
}
