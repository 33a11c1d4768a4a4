package orders_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bookstore/internal/entities"
	"bookstore/internal/generated/dto"
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
	query := r.URL.Query()

	customerNr, err := strconv.ParseInt(query.Get("customer_nr"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// make_date в запросе поиска не принимает год <= 0
	year, err := strconv.Atoi(query.Get("year"))
	if err != nil || year < 1 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderInfos, err := h.service.SearchOrders(r.Context(), customerNr, year)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := make([]dto.OrderInfo, 0, len(orderInfos))
	for _, info := range orderInfos {
		response = append(response, toOrderInfoDTO(info))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderInfoDTO(info entities.OrderInfo) dto.OrderInfo {
	return dto.OrderInfo{
		Nr:        info.Nr,
		Amount:    info.Amount.String(),
		Status:    info.Status.String(),
		CreatedAt: info.CreatedAt,
	}
}
