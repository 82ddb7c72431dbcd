package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/costeladotiti/cardapio/internal/menu/application"
	"github.com/costeladotiti/cardapio/internal/menu/domain"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	log     *slog.Logger
	catalog *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, catalog *application.Service) *Handler {
	return &Handler{
		log:     log,
		catalog: catalog,
		tracer:  otel.Tracer("menu-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/additionals", h.listAdditionals)
	r.Get("/restaurant", h.getRestaurant)

	return r
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "ListProducts")
	defer span.End()

	var out []domain.Product
	if category := r.URL.Query().Get("category"); category != "" {
		out = h.catalog.ProductsByCategory(domain.Category(category))
	} else {
		out = h.catalog.Products()
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "GetProduct")
	defer span.End()

	p, err := h.catalog.ProductByID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) listAdditionals(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "ListAdditionals")
	defer span.End()

	writeJSON(w, http.StatusOK, h.catalog.Additionals())
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "GetRestaurant")
	defer span.End()

	writeJSON(w, http.StatusOK, h.catalog.Restaurant())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
