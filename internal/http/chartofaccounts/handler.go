package chartofaccounts

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ebisa/contabil/internal/chartofaccounts"
	"github.com/ebisa/contabil/internal/http/auth"
	"github.com/ebisa/contabil/internal/http/respond"
	"github.com/ebisa/contabil/internal/importer"
)

type Handler struct {
	importSvc *importer.Service
	svc       *chartofaccounts.Service
	maxUpload int64
}

func NewHandler(importSvc *importer.Service, svc *chartofaccounts.Service, maxUpload int64) *Handler {
	return &Handler{importSvc: importSvc, svc: svc, maxUpload: maxUpload}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/import", h.importFile)
	r.Get("/", h.list)
	r.Get("/vigencia", h.vigency)
	r.Get("/{id}/itens", h.items)
}

// confirmed accepts the usual checkbox spellings.
func confirmed(s string) bool {
	v, err := strconv.ParseBool(s)
	return (err == nil && v) || s == "on" || s == "sim"
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	year, _ := strconv.Atoi(r.FormValue("ano"))

	req := importer.ChartRequest{
		Company:          r.FormValue("empresa"),
		Year:             year,
		Name:             r.FormValue("nome"),
		Description:      r.FormValue("descricao"),
		ConfirmOverwrite: confirmed(r.FormValue("confirmar")),
		User:             auth.User(r.Context()),
	}

	if s := r.FormValue("plano_contas_id"); s != "" {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid plano_contas_id", http.StatusBadRequest)
			return
		}

		req.ChartID = new(id)
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		req.File = file
		req.FileName = header.Filename
	}

	respond.Import(w, h.importSvc.ImportChart(r.Context(), req))
}

func (h *Handler) vigency(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("empresa")

	year, err := strconv.Atoi(r.URL.Query().Get("ano"))
	if company == "" || err != nil {
		http.Error(w, "empresa and ano are required", http.StatusBadRequest)
		return
	}

	status, err := h.importSvc.CheckVigency(r.Context(), company, year)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, status)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := chartofaccounts.VigencyFilter{ActiveOnly: q.Get("ativas") != "false"}

	if s := q.Get("empresa"); s != "" {
		filter.CompanyName = new(s)
	}

	if s := q.Get("ano"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Year = new(v)
		}
	}

	vigencies, err := h.svc.ListVigencies(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toVigencyResponseList(vigencies))
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	items, err := h.svc.Items(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toItemResponseList(items))
}
