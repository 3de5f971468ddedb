package impl

import (
	"context"
	"log/slog"
	"time"

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
	defaultProductPage    = 1
	defaultProductPerPage = 20
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	productRules *service.ProductService
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ProductRules *service.ProductService
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService. It receives all dependencies as interfaces.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		productRules: params.ProductRules,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct introduces a new catalog item.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	price, err := entity.NewPrice(input.Price)
	if err != nil {
		return nil, err
	}
	category, err := entity.NewProductCategory(input.Category)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Stock:       input.Stock,
		Category:    category,
		IsActive:    true,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.productRules.ValidateProductCreation(product); err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, &product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Int64("productID", product.ID.Int64()), slog.String("name", product.Name))

	return toProductOutput(&product), nil
}

// UpdateStock sets a product's stock to a new absolute level. The
// read-validate-write sequence runs in one transaction.
func (srv *productService) UpdateStock(ctx context.Context, input *usecase.UpdateStockInput) (*usecase.ProductOutput, error) {
	pid, err := entity.NewProductID(input.ProductID)
	if err != nil {
		return nil, err
	}

	var updated entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, txErr := productRepo.FindByID(ctx, pid)
		if errors.Is(txErr, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find product")
		}

		if txErr := srv.productRules.ValidateStockUpdate(*product, input.Stock); txErr != nil {
			return txErr
		}

		updated = product.WithStock(input.Stock)

		return productRepo.Update(ctx, &updated)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update stock",
			slog.Int64("productID", input.ProductID), slog.Int("stock", input.Stock), slog.Any("error", err))

		return nil, err
	}

	return toProductOutput(&updated), nil
}

// SetProductActive flips the product's active flag.
func (srv *productService) SetProductActive(ctx context.Context, input *usecase.SetProductActiveInput) (*usecase.ProductOutput, error) {
	pid, err := entity.NewProductID(input.ProductID)
	if err != nil {
		return nil, err
	}

	var updated entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, txErr := productRepo.FindByID(ctx, pid)
		if errors.Is(txErr, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}
		if txErr != nil {
			return errors.Wrap(txErr, "failed to find product")
		}

		updated = product.Activated(input.Active)

		return productRepo.Update(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}

	return toProductOutput(&updated), nil
}

// GetProduct returns a single catalog item.
func (srv *productService) GetProduct(ctx context.Context, productID int64) (*usecase.ProductOutput, error) {
	pid, err := entity.NewProductID(productID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, pid)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductOutput(product), nil
}

// ListProducts returns a page of the catalog matching the query.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	criteria := repository.ProductCriteria{
		ActiveOnly: input.ActiveOnly,
		Keyword:    input.Keyword,
	}
	if input.Category != "" {
		category, err := entity.NewProductCategory(input.Category)
		if err != nil {
			return nil, err
		}
		criteria.Category = &category
	}

	sort := repository.ProductSort{Field: repository.ProductSortByCreatedAt, Direction: repository.SortDescending}
	if input.SortBy != "" {
		sort.Field = repository.ProductSortField(input.SortBy)
	}
	if input.SortDir != "" {
		sort.Direction = repository.SortDirection(input.SortDir)
	}

	page := input.Page
	if page < 1 {
		page = defaultProductPage
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultProductPerPage
	}
	pagination := repository.Pagination{Page: page, PerPage: perPage}

	products, err := srv.productRepo.FindByCriteria(ctx, criteria, sort, pagination)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	total, err := srv.productRepo.CountByCriteria(ctx, criteria)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for i := range products {
		outputs = append(outputs, toProductOutput(&products[i]))
	}

	return &usecase.ListProductsOutput{
		Products: outputs,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}, nil
}
