package app

import (
	"context"
	"time"

	"bookstore/internal/handlers/rest/order_cancel_post"
	"bookstore/internal/handlers/rest/order_delete"
	"bookstore/internal/handlers/rest/order_get"
	"bookstore/internal/handlers/rest/order_post"
	"bookstore/internal/handlers/rest/orders_get"
	"bookstore/internal/handlers/rest/statistic_get"
	"bookstore/internal/handlers/tasks/order_dispatch"
	"bookstore/internal/pkg/config"

	bookRepo "bookstore/internal/repository/book"
	customerRepo "bookstore/internal/repository/customer"
	orderRepo "bookstore/internal/repository/order"
	orderService "bookstore/internal/service/order"
	statisticsService "bookstore/internal/service/statistics"

	"bookstore/pkg/background"
	"bookstore/pkg/logger"
	"bookstore/pkg/querier"
	"bookstore/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type (
	DispatchTickInterval time.Duration
)

type Application struct {
	ServiceOrders     ServiceOrders
	ServiceStatistics ServiceStatistics
	BackgroundWorkers *background.Worker
}

type ServiceOrders interface {
	order_post.Service
	order_get.Service
	order_cancel_post.Service
	order_delete.Service
	orders_get.Service
}

type ServiceStatistics interface {
	statistic_get.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCustomerRepository(querier *querier.Querier) *customerRepo.Repository {
	return customerRepo.New(querier)
}

func provideBookRepository(querier *querier.Querier) *bookRepo.Repository {
	return bookRepo.New(querier)
}

func provideLifecycle(cfg *config.Config) orderService.Lifecycle {
	return orderService.NewLifecycle(cfg.Orders.DispatchDelay)
}

func providePaymentLimit(cfg *config.Config) decimal.Decimal {
	return cfg.Orders.PaymentLimit
}

func provideServiceOrders(
	repository orderService.Repository,
	customers orderService.CustomerDirectory,
	catalog orderService.CatalogLookup,
	lifecycle orderService.Lifecycle,
	paymentLimit decimal.Decimal,
	txManager orderService.TxManager,
	events orderService.EventSink,
) *orderService.Service {
	return orderService.New(
		repository,
		customers,
		catalog,
		lifecycle,
		paymentLimit,
		txManager,
		events,
	)
}

func provideServiceStatistics(repository statisticsService.Repository) *statisticsService.Service {
	return statisticsService.New(repository)
}

func provideDispatchTickInterval(cfg *config.Config) DispatchTickInterval {
	return DispatchTickInterval(cfg.Tasks.DispatchTickInterval)
}

func provideOrderDispatchTask(
	log logger.Logger,
	service order_dispatch.Service,
	interval DispatchTickInterval,
) *order_dispatch.OrderDispatch {
	return order_dispatch.NewOrderDispatch(log, service, time.Duration(interval))
}

func provideTaskList(
	orderDispatchTask *order_dispatch.OrderDispatch,
) []background.Task {
	return []background.Task{
		orderDispatchTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
