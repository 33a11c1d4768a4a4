package statistics

import "errors"

// ErrNoOrdersForYear — за год нет ни одного заказа. Для вызывающей
// стороны это не сбой, а отсутствие данных.
var ErrNoOrdersForYear = errors.New("no orders for year")
