package orderevents

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"bookstore/internal/entities"
	"bookstore/pkg/logger"
)

// Gateway публикует события смены статуса заказа в Kafka. Публикация
// best-effort: ошибка логируется и не влияет на исход операции,
// поэтому наружу ничего не возвращается.
type Gateway struct {
	log      handlerLogger
	producer producer
}

func New(log handlerLogger, producer producer) *Gateway {
	return &Gateway{
		log:      log.With(),
		producer: producer,
	}
}

type orderStatusChangedEvent struct {
	OrderNr    int64     `json:"order_nr"`
	CustomerNr int64     `json:"customer_nr"`
	Status     string    `json:"status"`
	Amount     string    `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (g *Gateway) OrderStatusChanged(_ context.Context, orderEntity entities.Order) {
	event := orderStatusChangedEvent{
		OrderNr:    orderEntity.Nr,
		CustomerNr: orderEntity.CustomerNr,
		Status:     orderEntity.Status.String(),
		Amount:     orderEntity.Amount.String(),
		OccurredAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		g.log.With(
			logger.NewField("order_nr", orderEntity.Nr),
			logger.NewField("error", err),
		).Error("marshal order status event")
		return
	}

	key := []byte(strconv.FormatInt(orderEntity.Nr, 10))
	if err := g.producer.Send(key, payload); err != nil {
		g.log.With(
			logger.NewField("order_nr", orderEntity.Nr),
			logger.NewField("status", orderEntity.Status.String()),
			logger.NewField("error", err),
		).Error("publish order status event")
		return
	}

	EventsPublishedTotal.WithLabelValues(orderEntity.Status.String()).Inc()
}
