package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/minishop/minishop-go/internal/model"
)

var ErrItemNotFound = errors.New("item not found")

// ItemRepository handles catalog item persistence operations.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts a new item and sets the generated ID on the item struct.
func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	query := `INSERT INTO items (title, price, active) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, item.Title, item.Price, item.Active)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	item.ID = id
	return nil
}

// ListByPrice retrieves all items ordered by ascending price.
func (r *ItemRepository) ListByPrice(ctx context.Context) ([]model.Item, error) {
	query := `SELECT id, title, price, active FROM items ORDER BY price ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Price, &it.Active); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// GetByID retrieves a single item by its ID.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	query := `SELECT id, title, price, active FROM items WHERE id = ?`

	item := &model.Item{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Title, &item.Price, &item.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}
