//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"bookstore/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByNr(ctx context.Context, nr int64) (*entities.Order, error)

	// UpdateStatus меняет статус только при совпадении текущего статуса и
	// версии (optimistic lock). Несовпадение версии — ErrVersionConflict.
	UpdateStatus(ctx context.Context, nr int64, from, to entities.OrderStatusType, version int) error

	Delete(ctx context.Context, nr int64) error
	SearchByCustomerAndYear(ctx context.Context, customerNr int64, year int) ([]entities.OrderInfo, error)
	// UpdateOrdersShippedWhereDispatchDue возвращает заказы, переведённые
	// в shipped, чтобы по каждому можно было опубликовать событие.
	UpdateOrdersShippedWhereDispatchDue(ctx context.Context, dispatchDelay time.Duration) ([]entities.Order, error)
}

type CustomerDirectory interface {
	GetByNr(ctx context.Context, nr int64) (*entities.Customer, error)
}

type CatalogLookup interface {
	GetByNr(ctx context.Context, nr int64) (*entities.Book, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventSink получает уведомления об изменении статуса заказа.
// Реализация обязана быть best-effort: ошибки публикации не должны
// влиять на исход операции.
type EventSink interface {
	OrderStatusChanged(ctx context.Context, order entities.Order)
}
