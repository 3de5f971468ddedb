package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order with its item snapshots in one insert and
// copies back the generated id.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	id, err := entity.NewOrderID(orderM.ID)
	if err != nil {
		return errors.Wrap(err, "invalid generated order id")
	}
	order.ID = id
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// FindByID retrieves a single order with its items.
func (repo *orderRepository) FindByID(ctx context.Context, id entity.OrderID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id.Int64()).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM)
}

// FindByUserID retrieves a page of the user's orders, newest first.
func (repo *orderRepository) FindByUserID(ctx context.Context, userID entity.UserID, filter repository.OrderFilter, page repository.Pagination) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := applyOrderFilter(repo.db.WithContext(ctx), filter).
		Preload("Items").
		Where("user_id = ?", userID.Int64()).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit())

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order, err := toOrderDomain(orderM)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

// CountByUserID returns the total number of the user's orders matching the filter.
func (repo *orderRepository) CountByUserID(ctx context.Context, userID entity.UserID, filter repository.OrderFilter) (int64, error) {
	var count int64

	if err := applyOrderFilter(repo.db.WithContext(ctx).Model(&model.OrderModel{}), filter).
		Where("user_id = ?", userID.Int64()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func applyOrderFilter(query *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	return query
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) (*entity.Order, error) {
	id, err := entity.NewOrderID(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored order id")
	}
	userID, err := entity.NewUserID(data.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored order owner")
	}
	postalCode, err := entity.NewPostalCode(data.PostalCode)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored postal code")
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		productID, err := entity.NewProductID(itemM.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored order product id")
		}
		price, err := entity.NewPrice(itemM.PriceAtPurchase)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored purchase price")
		}
		quantity, err := entity.NewQuantity(itemM.Quantity)
		if err != nil {
			return nil, errors.Wrap(err, "invalid stored order quantity")
		}
		items = append(items, entity.OrderItem{
			ProductID:       productID,
			ProductName:     itemM.ProductName,
			PriceAtPurchase: price,
			Quantity:        quantity,
		})
	}

	order := &entity.Order{
		ID:     id,
		UserID: userID,
		Items:  items,
		Shipping: entity.ShippingAddress{
			RecipientName: data.RecipientName,
			PostalCode:    postalCode,
			Prefecture:    data.Prefecture,
			City:          data.City,
			StreetAddress: data.StreetAddress,
		},
		PaymentMethod: data.PaymentMethod,
		Notes:         data.Notes,
		Status:        entity.OrderStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.ContactEmail != "" || data.ContactPhone != "" {
		contact := &entity.ContactInfo{Phone: data.ContactPhone}
		if data.ContactEmail != "" {
			email, err := entity.NewEmail(data.ContactEmail)
			if err != nil {
				return nil, errors.Wrap(err, "invalid stored contact email")
			}
			contact.Email = email
		}
		order.Contact = contact
	}

	return order, nil
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID:       item.ProductID.Int64(),
			ProductName:     item.ProductName,
			PriceAtPurchase: item.PriceAtPurchase.Value(),
			Quantity:        item.Quantity.Value(),
		})
	}

	orderM := &model.OrderModel{
		ID:            data.ID.Int64(),
		UserID:        data.UserID.Int64(),
		RecipientName: data.Shipping.RecipientName,
		PostalCode:    data.Shipping.PostalCode.Value(),
		Prefecture:    data.Shipping.Prefecture,
		City:          data.Shipping.City,
		StreetAddress: data.Shipping.StreetAddress,
		PaymentMethod: data.PaymentMethod,
		Notes:         data.Notes,
		Status:        string(data.Status),
		TotalAmount:   data.TotalAmount().Value(),
		Items:         items,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	if data.Contact != nil {
		orderM.ContactEmail = data.Contact.Email.Value()
		orderM.ContactPhone = data.Contact.Phone
	}

	return orderM
}
