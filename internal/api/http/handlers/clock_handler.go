package handlers

import (
	"net/http"

	"github.com/roamly/roamly/internal/clock"
	"go.uber.org/zap"
)

type ClockHandler struct {
	log *zap.Logger
	hub *clock.Hub
}

type clockResponse struct {
	CardID    string `json:"card_id"`
	TimeZone  string `json:"time_zone"`
	LocalTime string `json:"local_time"`
}

func NewClockHandler(log *zap.Logger, hub *clock.Hub) *ClockHandler {
	return &ClockHandler{log: log, hub: hub}
}

// GetClocks returns the live clock strings for the currently displayed
// cards, as maintained by the recurring refresh.
func (h *ClockHandler) GetClocks(w http.ResponseWriter, _ *http.Request) {
	bindings := h.hub.Snapshot()

	clocks := make([]clockResponse, 0, len(bindings))
	for _, b := range bindings {
		clocks = append(clocks, clockResponse{
			CardID:    b.CardID,
			TimeZone:  b.TimeZone,
			LocalTime: b.Display,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"clocks": clocks})
}
