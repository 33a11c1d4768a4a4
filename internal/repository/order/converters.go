package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) (*entities.Order, error) {
	amount, err := decimal.NewFromString(o.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse order amount %q: %w", o.Amount, err)
	}

	itemEntities := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, fmt.Errorf("parse item price %q: %w", item.Price, err)
		}
		itemEntities = append(itemEntities, entities.OrderItem{
			Quantity: item.Quantity,
			BookNr:   item.BookNr,
			Price:    price,
		})
	}

	return &entities.Order{
		Nr:         o.Nr,
		Version:    o.Version,
		CustomerNr: o.CustomerNr,
		Items:      itemEntities,
		Amount:     amount,
		Status:     entities.OrderStatusType(o.Status),
		CreatedAt:  o.CreatedAt,
	}, nil
}

func ToInfoDomain(info *OrderInfoDB) (*entities.OrderInfo, error) {
	amount, err := decimal.NewFromString(info.Amount)
	if err != nil {
		return nil, fmt.Errorf("parse order amount %q: %w", info.Amount, err)
	}

	return &entities.OrderInfo{
		Nr:        info.Nr,
		Amount:    amount,
		Status:    entities.OrderStatusType(info.Status),
		CreatedAt: info.CreatedAt,
	}, nil
}

func ToStatisticDomain(stat *OrderStatisticDB, year int) (*entities.OrderStatistic, error) {
	total, err := decimal.NewFromString(stat.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("parse total amount %q: %w", stat.TotalAmount, err)
	}

	average, err := decimal.NewFromString(stat.AverageAmount)
	if err != nil {
		return nil, fmt.Errorf("parse average amount %q: %w", stat.AverageAmount, err)
	}

	return &entities.OrderStatistic{
		Year:           year,
		CustomerNr:     stat.CustomerNr,
		FirstName:      stat.FirstName,
		LastName:       stat.LastName,
		PositionsCount: stat.PositionsCount,
		TotalAmount:    total,
		AverageAmount:  average,
	}, nil
}
