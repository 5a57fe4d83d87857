package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/minishop/minishop-go/internal/model"
	"github.com/minishop/minishop-go/internal/repository"
)

var ErrItemNotFound = errors.New("item not found")

// itemStore is the subset of the item repository the catalog uses.
type itemStore interface {
	Create(ctx context.Context, item *model.Item) error
	ListByPrice(ctx context.Context) ([]model.Item, error)
	GetByID(ctx context.Context, id int64) (*model.Item, error)
}

// CatalogService handles catalog business logic.
type CatalogService struct {
	items itemStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(items itemStore) *CatalogService {
	return &CatalogService{items: items}
}

// ListItems returns all catalog items ordered by ascending price.
func (s *CatalogService) ListItems(ctx context.Context) ([]model.Item, error) {
	return s.items.ListByPrice(ctx)
}

// CreateItem validates the submitted form and persists a new active item.
// Validation failures come back as a *ValidationError; nothing is written.
func (s *CatalogService) CreateItem(ctx context.Context, form model.ItemForm) (*model.Item, error) {
	var verr ValidationError

	title := strings.TrimSpace(form.Title)
	if title == "" {
		verr.add("title", "title is required")
	}

	price, err := strconv.ParseInt(strings.TrimSpace(form.Price), 10, 64)
	if err != nil {
		verr.add("price", "price must be a whole number")
	} else if price < 0 {
		verr.add("price", "price must not be negative")
	}

	if err := verr.errOrNil(); err != nil {
		return nil, err
	}

	item := &model.Item{
		Title:  title,
		Price:  price,
		Active: true,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves a single item for the purchase confirmation page.
func (s *CatalogService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}
