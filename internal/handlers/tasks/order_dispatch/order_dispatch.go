package order_dispatch

import (
	"context"
	"time"

	"bookstore/pkg/logger"
)

type Service interface {
	DispatchDueOrders(ctx context.Context) (int64, error)
}

// OrderDispatch периодически фиксирует accepted -> shipped для заказов
// с истекшим окном отгрузки.
type OrderDispatch struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderDispatch(log logger.Logger, service Service, interval time.Duration) *OrderDispatch {
	return &OrderDispatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderDispatch) TTL() time.Duration {
	return o.interval
}

func (o *OrderDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.service.DispatchDueOrders(ctxWithTimeout)

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("shipped_orders", rowsAffected),
		).Info("order dispatch")
	}

	return err
}

func (o *OrderDispatch) Info() string {
	return "order dispatch"
}
