package order

import (
	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

// computeAmount суммирует quantity*price по всем позициям. Деньги
// считаются только в decimal, float здесь запрещен.
func computeAmount(items []entities.OrderItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrInvalidOrder
	}

	amount := decimal.Zero
	for _, item := range items {
		if !isValidQuantity(item.Quantity) {
			return decimal.Zero, ErrInvalidOrder
		}
		amount = amount.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	return amount, nil
}
