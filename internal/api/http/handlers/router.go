package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(search *SearchHandler, clocks *ClockHandler, view *ViewHandler) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/search", search.Search)
		r.Post("/reset", search.Reset)
		r.Get("/clocks", clocks.GetClocks)
		r.Get("/view", view.GetView)
		r.Post("/view", view.SetView)
	})

	return r
}
