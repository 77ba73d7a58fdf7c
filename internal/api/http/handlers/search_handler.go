package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/roamly/roamly/internal/application/service"
	"github.com/roamly/roamly/internal/clock"
	derr "github.com/roamly/roamly/internal/domain/errors"
	"go.uber.org/zap"
)

const (
	msgEmptyQuery   = "Please enter a keyword (example: beach, temple, Japan)."
	msgStillLoading = "Data is still loading... please try again."
	msgNoResults    = "No results found. Try a different keyword."

	fallbackName = "Unnamed place"
)

type SearchHandler struct {
	log    *zap.Logger
	search *service.SearchService
	hub    *clock.Hub
	view   *ViewState
}

type cardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	TimeZone    string `json:"time_zone,omitempty"`
	LocalTime   string `json:"local_time,omitempty"`
}

type searchResponse struct {
	Cards   []cardResponse `json:"cards"`
	Message string         `json:"message,omitempty"`
}

func NewSearchHandler(log *zap.Logger, search *service.SearchService, hub *clock.Hub, view *ViewState) *SearchHandler {
	return &SearchHandler{
		log:    log,
		search: search,
		hub:    hub,
		view:   view,
	}
}

// Search runs the tiered match and re-renders the result set: the clock
// hub's binding set is replaced in the same step, so clocks of cards that
// left the screen stop refreshing without any unregistration.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeMessage(w, http.StatusBadRequest, msgEmptyQuery)
		return
	}

	results, err := h.search.Search(query)
	if err != nil {
		if !errors.Is(err, derr.ErrCatalogNotLoaded) {
			h.log.Error("search failed", zap.Error(err), zap.String("query", query))
		}
		writeMessage(w, http.StatusServiceUnavailable, msgStillLoading)
		return
	}

	// Results only render on the home view.
	if current := h.view.Current(); current != HomeSection {
		h.log.Debug("forcing navigation to home", zap.String("from", current))
		h.view.Set(HomeSection)
	}

	cards := make([]cardResponse, 0, len(results))
	bindings := make([]clock.Binding, 0, len(results))
	for i, item := range results {
		card := cardResponse{
			ID:          fmt.Sprintf("card-%d", i),
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.ImageURL,
		}
		if card.Name == "" {
			card.Name = fallbackName
		}
		if zone := clock.ResolveTimeZone(item); zone != "" {
			card.TimeZone = zone
			bindings = append(bindings, clock.Binding{CardID: card.ID, TimeZone: zone})
		}
		cards = append(cards, card)
	}

	displays := make(map[string]string, len(bindings))
	for _, b := range h.hub.Replace(bindings) {
		displays[b.CardID] = b.Display
	}
	for i := range cards {
		if text, ok := displays[cards[i].ID]; ok {
			cards[i].LocalTime = text
		}
	}

	resp := searchResponse{Cards: cards}
	if len(cards) == 0 {
		resp.Message = msgNoResults
	}

	writeJSON(w, http.StatusOK, resp)
}

// Reset empties the results region: the active binding set is dropped and
// nothing else changes.
func (h *SearchHandler) Reset(w http.ResponseWriter, _ *http.Request) {
	h.hub.Clear()
	writeJSON(w, http.StatusNoContent, nil)
}
