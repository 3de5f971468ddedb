package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUserID retrieves the user's cart with all of its lines in the order
// they were added.
func (repo *cartRepository) FindByUserID(ctx context.Context, userID entity.UserID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.added_at ASC, cart_items.id ASC")
		}).
		Where("user_id = ?", userID.Int64()).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user ID")
	}

	return toCartDomain(&cartM)
}

// Save persists the cart's current line set as one unit. The stored lines are
// replaced wholesale, so the row set always mirrors the aggregate exactly.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	db := repo.db.WithContext(ctx)

	var cartM model.CartModel
	err := db.Where("user_id = ?", cart.UserID.Int64()).First(&cartM).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cartM = model.CartModel{
			UserID:    cart.UserID.Int64(),
			CreatedAt: cart.CreatedAt,
			UpdatedAt: cart.UpdatedAt,
		}
		if err := db.Omit("Items").Create(&cartM).Error; err != nil {
			return errors.Wrap(err, "failed to create cart")
		}
	case err != nil:
		return errors.Wrap(err, "failed to load cart for save")
	default:
		if err := db.Model(&model.CartModel{}).
			Where("id = ?", cartM.ID).
			Update("updated_at", cart.UpdatedAt).Error; err != nil {
			return errors.Wrap(err, "failed to touch cart")
		}
	}

	if err := db.Where("cart_id = ?", cartM.ID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to replace cart lines")
	}

	items := cart.Items()
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]model.CartItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, model.CartItemModel{
			CartID:    cartM.ID,
			ProductID: item.ProductID.Int64(),
			Quantity:  item.Quantity.Value(),
			AddedAt:   item.AddedAt,
		})
	}
	if err := db.Create(&itemModels).Error; err != nil {
		return errors.Wrap(err, "failed to insert cart lines")
	}

	return nil
}

// Clear removes every line from the user's cart in one statement. A user
// without a cart is already clear; that is not an error.
func (repo *cartRepository) Clear(ctx context.Context, userID entity.UserID) error {
	subquery := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Select("id").
		Where("user_id = ?", userID.Int64())

	if err := repo.db.WithContext(ctx).
		Where("cart_id IN (?)", subquery).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart aggregate.
func toCartDomain(data *model.CartModel) (*entity.Cart, error) {
	userID, err := entity.NewUserID(data.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored cart owner")
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		productID, err := entity.NewProductID(itemM.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored cart product id")
		}
		quantity, err := entity.NewQuantity(itemM.Quantity)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored cart quantity")
		}
		items = append(items, entity.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   itemM.AddedAt,
		})
	}

	return entity.RestoreCart(userID, items, data.CreatedAt, data.UpdatedAt), nil
}
