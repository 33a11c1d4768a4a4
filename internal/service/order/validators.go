package order

import (
	"time"

	"github.com/shopspring/decimal"

	"bookstore/internal/entities"
)

const cardNumberLength = 16

// validatePayment проверяет карту и сумму заказа. Проверки идут по
// порядку и обрываются на первой ошибке: формат номера, срок действия,
// лимит на заказ. Никаких обращений к платежным системам тут нет.
func validatePayment(card entities.CreditCard, amount, limit decimal.Decimal, now time.Time) error {
	if !isValidCardNumber(card.Number) {
		return newPaymentError(PaymentCodeInvalidCreditCard)
	}
	if card.ExpirationYear < now.Year() {
		return newPaymentError(PaymentCodeCreditCardExpired)
	}
	if amount.GreaterThan(limit) {
		return newPaymentError(PaymentCodePaymentLimitExceeded)
	}
	return nil
}

func isValidCardNumber(number string) bool {
	if len(number) != cardNumberLength {
		return false
	}
	for _, char := range number {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidQuantity(quantity int32) bool {
	return quantity >= 1
}
