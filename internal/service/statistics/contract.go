//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=statistics_test
package statistics

import (
	"context"

	"bookstore/internal/entities"
)

type Repository interface {
	StatisticByYear(ctx context.Context, year int) ([]entities.OrderStatistic, error)
}
