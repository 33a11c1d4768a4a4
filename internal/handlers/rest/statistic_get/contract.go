//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statistic_get_test
package statistic_get

import (
	"context"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetStatisticByYear(ctx context.Context, year int) ([]entities.OrderStatistic, error)
}
