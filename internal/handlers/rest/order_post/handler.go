package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"bookstore/internal/entities"
	"bookstore/internal/generated/dto"
	"bookstore/internal/service/order"
	"bookstore/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.NewOrderItem, 0, len(orderCreateDTO.Items))
	for _, item := range orderCreateDTO.Items {
		items = append(items, entities.NewOrderItem{
			BookNr:   item.BookNr,
			Quantity: item.Quantity,
		})
	}

	orderEntity, err := h.service.PlaceOrder(r.Context(), orderCreateDTO.CustomerNr, items)
	if err != nil {
		var paymentErr *order.PaymentError
		switch {
		case errors.As(err, &paymentErr):
			writePaymentError(w, h.log, paymentErr)
		case errors.Is(err, order.ErrInvalidOrder):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrCustomerNotFound),
			errors.Is(err, order.ErrBookNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// writePaymentError отдает 402 с кодом отказа, чтобы клиент мог
// различить причину без разбора текста.
func writePaymentError(w http.ResponseWriter, log handlerLogger, paymentErr *order.PaymentError) {
	code := string(paymentErr.Code)
	message := paymentErr.Error()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusPaymentRequired)
	err := json.NewEncoder(w).Encode(dto.Error{
		Code:    &code,
		Message: &message,
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, dto.OrderItem{
			BookNr:   item.BookNr,
			Quantity: item.Quantity,
			Price:    item.Price.String(),
		})
	}

	return dto.Order{
		Nr:         orderEntity.Nr,
		CustomerNr: orderEntity.CustomerNr,
		Amount:     orderEntity.Amount.String(),
		Status:     orderEntity.Status.String(),
		CreatedAt:  orderEntity.CreatedAt,
		Items:      items,
	}
}
