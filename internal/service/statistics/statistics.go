package statistics

import (
	"context"
	"fmt"

	"bookstore/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// GetStatisticByYear группирует заказы года по покупателям: число
// позиций, сумма и средний чек. Агрегация выполняется в базе.
func (s *Service) GetStatisticByYear(ctx context.Context, year int) ([]entities.OrderStatistic, error) {
	stats, err := s.repository.StatisticByYear(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("statistic by year: %w", err)
	}

	if len(stats) == 0 {
		return nil, ErrNoOrdersForYear
	}

	return stats, nil
}
