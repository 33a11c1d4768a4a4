//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"bookstore/internal/handlers/tasks/order_dispatch"
	"bookstore/internal/pkg/config"

	bookRepo "bookstore/internal/repository/book"
	customerRepo "bookstore/internal/repository/customer"
	orderRepo "bookstore/internal/repository/order"
	orderService "bookstore/internal/service/order"
	statisticsService "bookstore/internal/service/statistics"

	"bookstore/pkg/logger"
	"bookstore/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service). events может
// быть nil, если Kafka выключена конфигом.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	events orderService.EventSink,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideLifecycle,
		providePaymentLimit,
		provideDispatchTickInterval,

		provideOrderRepository,
		provideCustomerRepository,
		provideBookRepository,

		provideServiceOrders,
		provideServiceStatistics,

		provideOrderDispatchTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrders), new(*orderService.Service)),
		wire.Bind(new(ServiceStatistics), new(*statisticsService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CustomerDirectory), new(*customerRepo.Repository)),
		wire.Bind(new(orderService.CatalogLookup), new(*bookRepo.Repository)),
		wire.Bind(new(statisticsService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_dispatch.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}
