package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// HomeSection is the only section that renders search results. A search
// issued from any other section forces navigation back here first.
const HomeSection = "home"

// ViewState tracks the page's current view/section indicator.
type ViewState struct {
	mu      sync.Mutex
	section string
}

func NewViewState() *ViewState {
	return &ViewState{section: HomeSection}
}

func (v *ViewState) Current() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.section
}

func (v *ViewState) Set(section string) {
	v.mu.Lock()
	v.section = section
	v.mu.Unlock()
}

type ViewHandler struct {
	log  *zap.Logger
	view *ViewState
}

type viewResponse struct {
	Section string `json:"section"`
}

func NewViewHandler(log *zap.Logger, view *ViewState) *ViewHandler {
	return &ViewHandler{log: log, view: view}
}

func (h *ViewHandler) GetView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, viewResponse{Section: h.view.Current()})
}

func (h *ViewHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req viewResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body, expected {\"section\":...}")
		return
	}

	section := strings.TrimSpace(req.Section)
	if section == "" {
		writeError(w, http.StatusBadRequest, "section is required")
		return
	}

	h.view.Set(section)
	h.log.Debug("view changed", zap.String("section", section))
	writeJSON(w, http.StatusNoContent, nil)
}
