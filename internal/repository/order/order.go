package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"bookstore/internal/entities"
	"bookstore/internal/repository"
	"bookstore/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет заказ вместе с позициями. Вызывается внутри
// транзакции менеджера, поэтому сам транзакцию не открывает.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (version, customer_nr, amount, status, created_at)
		VALUES ($1, $2, $3::numeric, $4, $5)
		RETURNING nr, version, customer_nr, amount::text, status, created_at
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.Version,
		orderEntity.CustomerNr,
		orderEntity.Amount.String(),
		orderEntity.Status.String(),
		orderEntity.CreatedAt,
	).Scan(
		&orderModel.Nr,
		&orderModel.Version,
		&orderModel.CustomerNr,
		&orderModel.Amount,
		&orderModel.Status,
		&orderModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	builder := qb.
		Insert("order_items").
		Columns("order_nr", "book_nr", "quantity", "price")
	for _, item := range orderEntity.Items {
		builder = builder.Values(orderModel.Nr, item.BookNr, item.Quantity, item.Price.String())
	}

	itemsQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	if _, err := r.querier.Exec(ctx, itemsQuery, args...); err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrBookNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
	}

	itemModels := make([]OrderItemDB, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		itemModels = append(itemModels, OrderItemDB{
			BookNr:   item.BookNr,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
		})
	}

	return ToDomain(&orderModel, itemModels)
}

func (r *Repository) GetByNr(ctx context.Context, nr int64) (*entities.Order, error) {
	query := `
		SELECT nr, version, customer_nr, amount::text, status, created_at
		FROM orders
		WHERE nr = $1
	`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, nr).Scan(
		&orderModel.Nr,
		&orderModel.Version,
		&orderModel.CustomerNr,
		&orderModel.Amount,
		&orderModel.Status,
		&orderModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbynr error: %w", err)
	}

	itemModels, err := r.getItems(ctx, nr)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderModel, itemModels)
}

// UpdateStatus — optimistic lock: строка обновляется только при
// совпадении статуса и версии. Ноль затронутых строк означает либо
// отсутствие заказа, либо проигранную гонку версий.
func (r *Repository) UpdateStatus(ctx context.Context, nr int64, from, to entities.OrderStatusType, version int) error {
	query := `
		UPDATE orders
		SET status = $1, version = version + 1
		WHERE nr = $2 AND status = $3 AND version = $4
	`

	result, err := r.querier.Exec(ctx, query, to.String(), nr, from.String(), version)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE nr = $1)`, nr).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}
	if !exists {
		return order.ErrOrderNotFound
	}

	return order.ErrVersionConflict
}

func (r *Repository) Delete(ctx context.Context, nr int64) error {
	// позиции удаляются каскадом по FK
	query := `DELETE FROM orders WHERE nr = $1`

	result, err := r.querier.Exec(ctx, query, nr)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) SearchByCustomerAndYear(ctx context.Context, customerNr int64, year int) ([]entities.OrderInfo, error) {
	query := `
		SELECT nr, amount::text, status, created_at
		FROM orders
		WHERE customer_nr = $1
		  AND created_at >= make_date($2, 1, 1)
		  AND created_at < make_date($2 + 1, 1, 1)
		ORDER BY nr
	`

	rows, err := r.querier.Query(ctx, query, customerNr, year)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository search error: %w", err)
	}
	defer rows.Close()

	infos := make([]entities.OrderInfo, 0, 8)
	for rows.Next() {
		var infoModel OrderInfoDB
		err := rows.Scan(
			&infoModel.Nr,
			&infoModel.Amount,
			&infoModel.Status,
			&infoModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository search error: %w", err)
		}

		info, err := ToInfoDomain(&infoModel)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository search error: %w", err)
	}

	return infos, nil
}

// StatisticByYear агрегирует заказы года по покупателям. positions —
// число строк позиций, сумма и среднее считаются по сумме заказа.
func (r *Repository) StatisticByYear(ctx context.Context, year int) ([]entities.OrderStatistic, error) {
	query := `
		SELECT
			c.nr,
			c.first_name,
			c.last_name,
			SUM(p.positions)::bigint,
			SUM(o.amount)::text,
			AVG(o.amount)::text
		FROM orders o
		JOIN customers c ON c.nr = o.customer_nr
		JOIN LATERAL (
			SELECT COUNT(*) AS positions
			FROM order_items i
			WHERE i.order_nr = o.nr
		) p ON TRUE
		WHERE o.created_at >= make_date($1, 1, 1)
		  AND o.created_at < make_date($1 + 1, 1, 1)
		GROUP BY c.nr, c.first_name, c.last_name
		ORDER BY c.nr
	`

	rows, err := r.querier.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository statistic error: %w", err)
	}
	defer rows.Close()

	stats := make([]entities.OrderStatistic, 0, 8)
	for rows.Next() {
		var statModel OrderStatisticDB
		err := rows.Scan(
			&statModel.CustomerNr,
			&statModel.FirstName,
			&statModel.LastName,
			&statModel.PositionsCount,
			&statModel.TotalAmount,
			&statModel.AverageAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository statistic error: %w", err)
		}

		stat, err := ToStatisticDomain(&statModel, year)
		if err != nil {
			return nil, err
		}
		stats = append(stats, *stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository statistic error: %w", err)
	}

	return stats, nil
}

// UpdateOrdersShippedWhereDispatchDue массово переводит заказы с
// истекшим окном отгрузки в shipped с инкрементом версии и возвращает
// затронутые заказы (без позиций) для публикации событий.
func (r *Repository) UpdateOrdersShippedWhereDispatchDue(ctx context.Context, dispatchDelay time.Duration) ([]entities.Order, error) {
	query := `
		UPDATE orders
		SET status = 'shipped', version = version + 1
		WHERE status = 'accepted'
		  AND created_at <= NOW() - make_interval(secs => $1)
		RETURNING nr, version, customer_nr, amount::text, status, created_at
	`

	rows, err := r.querier.Query(ctx, query, dispatchDelay.Seconds())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository dispatch error: %w", err)
	}
	defer rows.Close()

	shipped := make([]entities.Order, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.Nr,
			&orderModel.Version,
			&orderModel.CustomerNr,
			&orderModel.Amount,
			&orderModel.Status,
			&orderModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository dispatch error: %w", err)
		}

		orderEntity, err := ToDomain(&orderModel, nil)
		if err != nil {
			return nil, err
		}
		shipped = append(shipped, *orderEntity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository dispatch error: %w", err)
	}

	return shipped, nil
}

func (r *Repository) getItems(ctx context.Context, orderNr int64) ([]OrderItemDB, error) {
	query := `
		SELECT book_nr, quantity, price::text
		FROM order_items
		WHERE order_nr = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderNr)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var itemModel OrderItemDB
		err := rows.Scan(&itemModel.BookNr, &itemModel.Quantity, &itemModel.Price)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemModels = append(itemModels, itemModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return itemModels, nil
}
