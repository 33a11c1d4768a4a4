package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bookstore/internal/entities"
	"bookstore/internal/service/order"
)

// Repository — read-only справочник покупателей. Регистрация и
// изменение данных покупателя живут вне этого сервиса.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByNr(ctx context.Context, nr int64) (*entities.Customer, error) {
	query := `
		SELECT nr, first_name, last_name, email,
		       card_number, card_expiration_month, card_expiration_year
		FROM customers
		WHERE nr = $1
	`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, nr).Scan(
		&customerModel.Nr,
		&customerModel.FirstName,
		&customerModel.LastName,
		&customerModel.Email,
		&customerModel.CardNumber,
		&customerModel.CardExpirationMonth,
		&customerModel.CardExpirationYear,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbynr error: %w", err)
	}

	return ToDomain(&customerModel), nil
}
