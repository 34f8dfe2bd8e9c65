package trialbalance

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ebisa/contabil/internal/export"
	"github.com/ebisa/contabil/internal/http/auth"
	"github.com/ebisa/contabil/internal/http/respond"
	"github.com/ebisa/contabil/internal/importer"
	"github.com/ebisa/contabil/internal/trialbalance"
)

type Handler struct {
	importSvc *importer.Service
	svc       *trialbalance.Service
	exportSvc *export.Service
	maxUpload int64
}

func NewHandler(importSvc *importer.Service, svc *trialbalance.Service, exportSvc *export.Service, maxUpload int64) *Handler {
	return &Handler{
		importSvc: importSvc,
		svc:       svc,
		exportSvc: exportSvc,
		maxUpload: maxUpload,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/import", h.importFile)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Get("/{id}/itens", h.items)
	r.Get("/{id}/export", h.exportXLSX)
}

func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	month, _ := strconv.Atoi(r.FormValue("mes"))
	year, _ := strconv.Atoi(r.FormValue("ano"))

	req := importer.TrialBalanceRequest{
		Company: r.FormValue("empresa"),
		Month:   month,
		Year:    year,
		User:    auth.User(r.Context()),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		req.File = file
		req.FileName = header.Filename
	}

	respond.Import(w, h.importSvc.ImportTrialBalance(r.Context(), req))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := trialbalance.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("empresa"); s != "" {
		filter.CompanyName = new(s)
	}

	if s := q.Get("ano"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Year = new(v)
		}
	}

	if s := q.Get("mes"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			filter.Month = new(v)
		}
	}

	batches, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBatchResponseList(batches))
}

func batchID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := batchID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toBatchResponse(b))
}

func (h *Handler) items(w http.ResponseWriter, r *http.Request) {
	id, ok := batchID(r)
	if !ok {
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

func (h *Handler) exportXLSX(w http.ResponseWriter, r *http.Request) {
	id, ok := batchID(r)
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(b)+`"`)

	if err := h.exportSvc.TrialBalanceXLSX(r.Context(), id, w); err != nil {
		respond.Error(w, err)
	}
}
