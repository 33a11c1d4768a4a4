package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	Nr         int64
	Version    int
	CustomerNr int64
	Items      []OrderItem
	Amount     decimal.Decimal
	Status     OrderStatusType
	CreatedAt  time.Time
}

// OrderItem живет только внутри заказа, Price — снимок цены книги
// на момент оформления.
type OrderItem struct {
	Quantity int32
	BookNr   int64
	Price    decimal.Decimal
}

type OrderStatusType string

const (
	OrderAccepted OrderStatusType = "accepted"
	OrderShipped  OrderStatusType = "shipped"
	OrderCanceled OrderStatusType = "canceled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// OrderInfo — проекция заказа для списков и поиска, без позиций.
type OrderInfo struct {
	Nr        int64
	Amount    decimal.Decimal
	Status    OrderStatusType
	CreatedAt time.Time
}

// OrderStatistic считается по запросу, в базе не хранится.
type OrderStatistic struct {
	Year           int
	CustomerNr     int64
	FirstName      string
	LastName       string
	PositionsCount int64
	TotalAmount    decimal.Decimal
	AverageAmount  decimal.Decimal
}

// NewOrderItem — входная позиция при оформлении заказа, цена
// подставляется сервисом из каталога.
type NewOrderItem struct {
	BookNr   int64
	Quantity int32
}
