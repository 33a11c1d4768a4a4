package order

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOrder = errors.New("invalid order")

	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrBookNotFound     = errors.New("book not found")

	ErrOrderAlreadyCanceled = errors.New("order already canceled")
	ErrOrderAlreadyShipped  = errors.New("order already shipped")
	ErrVersionConflict      = errors.New("order version conflict")

	ErrPaymentFailed = errors.New("payment failed")
)

type PaymentCode string

const (
	PaymentCodeInvalidCreditCard    PaymentCode = "invalid_credit_card"
	PaymentCodeCreditCardExpired    PaymentCode = "credit_card_expired"
	PaymentCodePaymentLimitExceeded PaymentCode = "payment_limit_exceeded"
)

// PaymentError несет точную причину отказа, чтобы вызывающая сторона
// могла ветвиться по коду через errors.As.
type PaymentError struct {
	Code PaymentCode
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment failed: %s", e.Code)
}

func (e *PaymentError) Is(target error) bool {
	return target == ErrPaymentFailed
}

func newPaymentError(code PaymentCode) *PaymentError {
	return &PaymentError{Code: code}
}
