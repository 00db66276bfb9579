package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dealradar/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/deals", handler(s.getV1Deals))
			r.Get("/stores", handler(s.getV1Stores))
			r.Get("/rates", handler(s.getV1Rates))
			r.Post("/refresh", handler(s.postV1Refresh))
			r.Post("/classify", handler(s.postV1Classify))
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
