package order

import (
	"time"

	"bookstore/internal/entities"
)

// Lifecycle — машина состояний заказа: accepted -> shipped по истечении
// окна отгрузки, accepted -> canceled только внутри окна. Оба состояния
// shipped и canceled терминальные. Хранимый статус остается accepted до
// фоновой фиксации, поэтому решения принимаются по EffectiveStatus.
type Lifecycle struct {
	dispatchDelay time.Duration
}

func NewLifecycle(dispatchDelay time.Duration) Lifecycle {
	return Lifecycle{dispatchDelay: dispatchDelay}
}

// EffectiveStatus возвращает статус с учетом истекшего окна отгрузки:
// принятый заказ, у которого окно прошло, уже считается отгруженным,
// даже если фоновая задача еще не записала shipped в базу.
func (l Lifecycle) EffectiveStatus(order *entities.Order, now time.Time) entities.OrderStatusType {
	if order.Status == entities.OrderAccepted && now.Sub(order.CreatedAt) >= l.dispatchDelay {
		return entities.OrderShipped
	}
	return order.Status
}

// CanCancel проверяет легальность перехода accepted -> canceled.
func (l Lifecycle) CanCancel(order *entities.Order, now time.Time) error {
	switch l.EffectiveStatus(order, now) {
	case entities.OrderCanceled:
		return ErrOrderAlreadyCanceled
	case entities.OrderShipped:
		return ErrOrderAlreadyShipped
	default:
		return nil
	}
}

func (l Lifecycle) DispatchDelay() time.Duration {
	return l.dispatchDelay
}
