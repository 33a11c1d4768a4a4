package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
	"bookstore/internal/service/order"
)

// Repository — read-only доступ к каталогу. Ведение каталога — задача
// внешней системы.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByNr(ctx context.Context, nr int64) (*entities.Book, error) {
	query := `
		SELECT nr, isbn, title, author, price::text
		FROM books
		WHERE nr = $1
	`

	var bookModel BookDB
	err := r.querier.QueryRow(ctx, query, nr).Scan(
		&bookModel.Nr,
		&bookModel.ISBN,
		&bookModel.Title,
		&bookModel.Author,
		&bookModel.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrBookNotFound
		}
		return nil, fmt.Errorf("unexpected book repository getbynr error: %w", err)
	}

	price, err := decimal.NewFromString(bookModel.Price)
	if err != nil {
		return nil, fmt.Errorf("parse book price %q: %w", bookModel.Price, err)
	}

	return &entities.Book{
		Nr:     bookModel.Nr,
		ISBN:   bookModel.ISBN,
		Title:  bookModel.Title,
		Author: bookModel.Author,
		Price:  price,
	}, nil
}
