package entities

import "github.com/shopspring/decimal"

type Book struct {
	Nr     int64
	ISBN   string
	Title  string
	Author string
	Price  decimal.Decimal
}
