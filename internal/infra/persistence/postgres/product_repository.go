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

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id entity.ProductID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM)
}

// FindByIDs retrieves the current state of several products, keyed by id.
// Missing products are simply absent from the result.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []entity.ProductID) (map[entity.ProductID]entity.Product, error) {
	if len(ids) == 0 {
		return map[entity.ProductID]entity.Product{}, nil
	}

	rawIDs := make([]int64, 0, len(ids))
	for _, id := range ids {
		rawIDs = append(rawIDs, id.Int64())
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", rawIDs).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by IDs")
	}

	products := make(map[entity.ProductID]entity.Product, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products[product.ID] = *product
	}

	return products, nil
}

// FindByCriteria retrieves a page of products matching the criteria.
func (repo *productRepository) FindByCriteria(ctx context.Context, criteria repository.ProductCriteria, sort repository.ProductSort, page repository.Pagination) ([]entity.Product, error) {
	var productModels []*model.ProductModel

	query := applyProductCriteria(repo.db.WithContext(ctx), criteria).
		Order(orderClause(sort)).
		Offset(page.Offset()).
		Limit(page.Limit())

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by criteria")
	}

	products := make([]entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		product, err := toProductDomain(productM)
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}

	return products, nil
}

// CountByCriteria returns the total number of products matching the criteria.
func (repo *productRepository) CountByCriteria(ctx context.Context, criteria repository.ProductCriteria) (int64, error) {
	var count int64

	if err := applyProductCriteria(repo.db.WithContext(ctx).Model(&model.ProductModel{}), criteria).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

// ExistsByID reports whether a product with the given id exists.
func (repo *productRepository) ExistsByID(ctx context.Context, id entity.ProductID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id.Int64()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product existence")
	}

	return count > 0, nil
}

// Create persists a new product and copies back the generated values.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	id, err := entity.NewProductID(productM.ID)
	if err != nil {
		return errors.Wrap(err, "invalid generated product id")
	}
	product.ID = id
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product row.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", productM.ID).
		Updates(map[string]any{
			"name":        productM.Name,
			"description": productM.Description,
			"price":       productM.Price,
			"stock":       productM.Stock,
			"category":    productM.Category,
			"is_active":   productM.IsActive,
			"image_url":   productM.ImageURL,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates catalog constraints")
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStockIfSufficient atomically subtracts the quantity, guarded by
// the stock condition in the WHERE clause. Zero rows affected means the
// condition did not hold.
func (repo *productRepository) DecrementStockIfSufficient(ctx context.Context, id entity.ProductID, quantity entity.Quantity) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id.Int64(), quantity.Value()).
		Update("stock", gorm.Expr("stock - ?", quantity.Value()))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockConditionFailed
	}

	return nil
}

// applyProductCriteria translates the domain criteria into WHERE clauses.
func applyProductCriteria(query *gorm.DB, criteria repository.ProductCriteria) *gorm.DB {
	if criteria.Category != nil {
		query = query.Where("category = ?", criteria.Category.Value())
	}
	if criteria.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if criteria.Keyword != "" {
		pattern := "%" + criteria.Keyword + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	return query
}

// orderClause builds the ORDER BY for a listing. The sort field set is
// closed, so the clause is assembled from known values only.
func orderClause(sort repository.ProductSort) string {
	field := "created_at"
	switch sort.Field {
	case repository.ProductSortByName:
		field = "name"
	case repository.ProductSortByPrice:
		field = "price"
	case repository.ProductSortByCreatedAt:
		field = "created_at"
	}

	direction := "DESC"
	if sort.Direction == repository.SortAscending {
		direction = "ASC"
	}

	return field + " " + direction
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
// Stored rows satisfy the same constraints the value objects enforce, so a
// mapping failure indicates corrupted data.
func toProductDomain(data *model.ProductModel) (*entity.Product, error) {
	id, err := entity.NewProductID(data.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored product id")
	}
	price, err := entity.NewPrice(data.Price)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored product price")
	}
	category, err := entity.NewProductCategory(data.Category)
	if err != nil {
		return nil, errors.Wrap(err, "invalid stored product category")
	}

	return &entity.Product{
		ID:          id,
		Name:        data.Name,
		Description: data.Description,
		Price:       price,
		Stock:       data.Stock,
		Category:    category,
		IsActive:    data.IsActive,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          data.ID.Int64(),
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price.Value(),
		Stock:       data.Stock,
		Category:    data.Category.Value(),
		IsActive:    data.IsActive,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
