package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cloud-wave-best-zizon/stockify-web/internal/domain"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/events"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/fallback"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/repository"
	"github.com/cloud-wave-best-zizon/stockify-web/internal/session"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CategoryProvider interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
}

type ProductProvider interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	SaveProduct(ctx context.Context, product *domain.Product, state domain.SaveState) error
	DeleteProduct(ctx context.Context, id int64) error
}

type StockProvider interface {
	CurrentStock(ctx context.Context, productID int64) (int, bool, error)
}

// ProductList is the product grid. Fallback marks example rows shown because
// the product service could not be reached.
type ProductList struct {
	Rows     []domain.ProductRow
	Fallback bool
}

// ProductSaved is a successful save: the applied mode and the reloaded grid.
type ProductSaved struct {
	Mode domain.FormMode
	List *ProductList
}

// InventoryService drives the product screen: grid, detail and the add/edit form.
type InventoryService struct {
	categories CategoryProvider
	products   ProductProvider
	stock      StockProvider
	forms      formStore
	fallback   fallback.Provider
	publisher  events.Publisher
	logger     *zap.Logger
}

func NewInventoryService(
	categories CategoryProvider,
	products ProductProvider,
	stock StockProvider,
	store session.Store,
	fb fallback.Provider,
	publisher events.Publisher,
	logger *zap.Logger,
) *InventoryService {
	if fb == nil {
		fb = fallback.Examples{}
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &InventoryService{
		categories: categories,
		products:   products,
		stock:      stock,
		forms:      formStore{store: store, screen: domain.ScreenInventory},
		fallback:   fb,
		publisher:  publisher,
		logger:     logger,
	}
}

// ListProducts loads the product grid. When the product service is unreachable
// the fallback rows are returned instead of an error.
func (s *InventoryService) ListProducts(ctx context.Context) (*ProductList, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrServiceUnavailable) {
			s.logger.Warn("Product service unreachable, showing example products", zap.Error(err))
			return &ProductList{Rows: s.fallback.Products(), Fallback: true}, nil
		}
		return nil, err
	}
	return &ProductList{Rows: domain.ProjectProducts(products)}, nil
}

// Categories returns the category dropdown. On failure the dropdown holds a
// single "Failed to load" entry and the error is returned with it.
func (s *InventoryService) Categories(ctx context.Context) ([]domain.Option, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to load categories", zap.Error(err))
		return []domain.Option{{Value: domain.PlaceholderValue, Label: "Failed to load"}}, err
	}
	s.logger.Debug("Categories loaded", zap.Int("count", len(categories)))
	return domain.CategoryOptions(categories), nil
}

// refreshOptions reloads the dropdown when it is empty or only holds the placeholder.
func (s *InventoryService) refreshOptions(ctx context.Context, form *domain.FormSession) string {
	if !form.NeedsOptions() {
		return ""
	}
	opts, err := s.Categories(ctx)
	form.Options = opts
	if err != nil {
		return "Failed to load categories"
	}
	if len(opts) == 1 {
		return "No categories found"
	}
	return ""
}

func (s *InventoryService) Form(ctx context.Context, sessionID string) (*domain.FormSession, error) {
	return s.forms.load(ctx, sessionID)
}

func (s *InventoryService) OpenForAdd(ctx context.Context, sessionID string) (*FormView, error) {
	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	form.OpenAdd()
	notice := s.refreshOptions(ctx, form)

	if err := s.forms.save(ctx, sessionID, form); err != nil {
		return nil, err
	}
	return &FormView{Form: form, Notice: notice}, nil
}

// OpenForEdit loads product id into the form. A missing product leaves the
// stored form untouched.
func (s *InventoryService) OpenForEdit(ctx context.Context, sessionID string, id int64) (*FormView, error) {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	notice := s.refreshOptions(ctx, form)

	form.Close()
	form.Product = domain.ProductFields{
		Name:        product.Name,
		UnitPrice:   product.UnitPrice.StringFixed(2),
		Description: product.Description,
		Brand:       product.Brand,
		CategoryID:  domain.PlaceholderValue,
	}
	if product.Category != nil {
		catID := strconv.FormatInt(product.Category.ID, 10)
		if form.HasOption(catID) {
			form.Product.CategoryID = catID
		} else {
			s.logger.Debug("Category not in dropdown",
				zap.Int64("product_id", id),
				zap.String("category_id", catID))
		}
	}
	form.OpenEdit(id)

	if err := s.forms.save(ctx, sessionID, form); err != nil {
		return nil, err
	}
	return &FormView{Form: form, Notice: notice}, nil
}

// Save validates input and creates or updates the product depending on the
// form mode. A closed form saves as a new product. On failure the form keeps
// its mode and the entered values.
func (s *InventoryService) Save(ctx context.Context, sessionID string, input domain.ProductFields) (*ProductSaved, error) {
	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !form.Open {
		form.OpenAdd()
	}
	form.Product = input

	if err := s.apply(ctx, form); err != nil {
		if saveErr := s.forms.save(ctx, sessionID, form); saveErr != nil {
			s.logger.Error("Failed to keep form after failed save", zap.Error(saveErr))
		}
		return nil, err
	}

	result := &ProductSaved{Mode: form.Mode}
	if err := s.forms.clear(ctx, sessionID); err != nil {
		s.logger.Error("Failed to close form after save", zap.Error(err))
	}
	result.List = s.reload(ctx)
	return result, nil
}

// reload refreshes the grid after a mutation; the mutation already succeeded,
// so a failing list only logs.
func (s *InventoryService) reload(ctx context.Context) *ProductList {
	list, err := s.ListProducts(ctx)
	if err != nil {
		s.logger.Error("Failed to reload products", zap.Error(err))
		return &ProductList{}
	}
	return list
}

func (s *InventoryService) apply(ctx context.Context, form *domain.FormSession) error {
	name, price, categoryID, err := validateProduct(form.Product)
	if err != nil {
		return err
	}

	category, err := s.categories.GetCategory(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return fmt.Errorf("category %d: %w", categoryID, ErrCategoryNotFound)
		}
		return err
	}

	if form.Mode == domain.ModeEdit {
		product, err := s.getProduct(ctx, form.EditingID)
		if err != nil {
			return err
		}
		product.Name = name
		product.UnitPrice = price
		product.Description = strings.TrimSpace(form.Product.Description)
		product.Brand = strings.TrimSpace(form.Product.Brand)
		product.Category = category

		if err := s.products.SaveProduct(ctx, product, domain.StateModified); err != nil {
			s.logger.Error("Failed to update product",
				zap.Int64("product_id", product.ID),
				zap.Error(err))
			return err
		}
		s.logger.Info("Product updated successfully", zap.Int64("product_id", product.ID))
		publish(ctx, s.publisher, s.logger,
			events.NewInventoryEvent(events.EntityProduct, events.ActionUpdated, product.ID, product.Name))
		return nil
	}

	product := &domain.Product{
		Name:        name,
		UnitPrice:   price,
		Description: strings.TrimSpace(form.Product.Description),
		Brand:       strings.TrimSpace(form.Product.Brand),
		Category:    category,
		MaxStock:    domain.DefaultMaxStock,
		MinStock:    domain.DefaultMinStock,
	}
	if err := s.products.SaveProduct(ctx, product, domain.StateNew); err != nil {
		s.logger.Error("Failed to create product",
			zap.String("name", product.Name),
			zap.Error(err))
		return err
	}
	s.logger.Info("Product created successfully",
		zap.String("name", product.Name),
		zap.Int64("category_id", category.ID))
	publish(ctx, s.publisher, s.logger,
		events.NewInventoryEvent(events.EntityProduct, events.ActionCreated, 0, product.Name))
	return nil
}

func (s *InventoryService) Cancel(ctx context.Context, sessionID string) (*domain.FormSession, error) {
	form, err := s.forms.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	form.Close()
	if err := s.forms.clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return form, nil
}

// Delete removes product id and returns the reloaded grid.
func (s *InventoryService) Delete(ctx context.Context, id int64) (*ProductList, error) {
	if id <= 0 {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		s.logger.Error("Failed to delete product",
			zap.Int64("product_id", id),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("Product deleted successfully", zap.Int64("product_id", id))
	publish(ctx, s.publisher, s.logger,
		events.NewInventoryEvent(events.EntityProduct, events.ActionDeleted, id, ""))
	return s.reload(ctx), nil
}

// Detail returns the product detail with its current stock. A failing stock
// service shows zero stock.
func (s *InventoryService) Detail(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	product, err := s.getProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	quantity, found, err := s.stock.CurrentStock(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to get current stock",
			zap.Int64("product_id", id),
			zap.Error(err))
		quantity = 0
	} else if !found {
		s.logger.Debug("No stock record for product", zap.Int64("product_id", id))
	}

	detail := domain.ProjectProductDetail(*product, quantity)
	return &detail, nil
}

func (s *InventoryService) getProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

var productMessages = map[string]string{
	"name":        "Please enter the product name",
	"unit_price":  "Please enter a valid price greater than 0",
	"category_id": "Please select a valid category",
}

func validateProduct(in domain.ProductFields) (string, decimal.Decimal, int64, error) {
	fields := domain.ProductFields{
		Name:       strings.TrimSpace(in.Name),
		UnitPrice:  strings.TrimSpace(in.UnitPrice),
		CategoryID: strings.TrimSpace(in.CategoryID),
	}
	if err := validateFields(fields, productMessages); err != nil {
		return "", decimal.Zero, 0, err
	}

	price := decimal.RequireFromString(fields.UnitPrice)
	categoryID, err := strconv.ParseInt(fields.CategoryID, 10, 64)
	if err != nil || categoryID <= 0 {
		return "", decimal.Zero, 0, &ValidationError{Field: "category_id", Message: productMessages["category_id"]}
	}

	return fields.Name, price, categoryID, nil
}
