package statistic_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"bookstore/internal/entities"
	"bookstore/internal/generated/dto"
	"bookstore/internal/service/statistics"
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
	// make_date в агрегирующем запросе не принимает год <= 0
	yearStr := mux.Vars(r)["year"]
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	statisticEntities, err := h.service.GetStatisticByYear(r.Context(), year)
	if err != nil {
		switch {
		case errors.Is(err, statistics.ErrNoOrdersForYear):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.OrderStatistic, 0, len(statisticEntities))
	for _, statistic := range statisticEntities {
		response = append(response, toStatisticDTO(statistic))
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

func toStatisticDTO(statistic entities.OrderStatistic) dto.OrderStatistic {
	return dto.OrderStatistic{
		Year:           statistic.Year,
		CustomerNr:     statistic.CustomerNr,
		FirstName:      statistic.FirstName,
		LastName:       statistic.LastName,
		PositionsCount: statistic.PositionsCount,
		TotalAmount:    statistic.TotalAmount.String(),
		AverageAmount:  statistic.AverageAmount.String(),
	}
}
