package company

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ebisa/contabil/internal/company"
	"github.com/ebisa/contabil/internal/http/respond"
)

type Handler struct {
	svc *company.Service
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.register)
}

type registerRequest struct {
	Name string `json:"nome"`
	CNPJ string `json:"cnpj"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	if companies == nil {
		companies = []*company.Company{}
	}

	respond.JSON(w, http.StatusOK, companies)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c, err := h.svc.Register(r.Context(), company.RegisterParams{Name: req.Name, CNPJ: req.CNPJ})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, c)
}
