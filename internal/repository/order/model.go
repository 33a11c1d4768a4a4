package order

import "time"

// Суммы читаются из NUMERIC как text и конвертируются в decimal
// на границе репозитория.
type OrderDB struct {
	Nr         int64
	Version    int
	CustomerNr int64
	Amount     string
	Status     string
	CreatedAt  time.Time
}

type OrderItemDB struct {
	BookNr   int64
	Quantity int32
	Price    string
}

type OrderInfoDB struct {
	Nr        int64
	Amount    string
	Status    string
	CreatedAt time.Time
}

type OrderStatisticDB struct {
	CustomerNr     int64
	FirstName      string
	LastName       string
	PositionsCount int64
	TotalAmount    string
	AverageAmount  string
}
