package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/invoice"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/response"
	"github.com/staffhive/staffhive-backend-go/internal/service/export"
)

type InvoiceHandler interface {
	GenerateInvoice(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
	ListInvoices(w http.ResponseWriter, r *http.Request)
	TransitionInvoice(w http.ResponseWriter, r *http.Request)
	ExportInvoice(w http.ResponseWriter, r *http.Request)
}

type invoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
	exportService  export.ExportService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService, exportService export.ExportService) InvoiceHandler {
	return &invoiceHandlerImpl{
		invoiceService: invoiceService,
		exportService:  exportService,
	}
}

func (h *invoiceHandlerImpl) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoice.GenerateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invoiceService.GenerateInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice generated", result)
}

func (h *invoiceHandlerImpl) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.invoiceService.GetInvoice(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) ListInvoices(w http.ResponseWriter, r *http.Request) {
	var clientID, status *string
	if c := r.URL.Query().Get("client_id"); c != "" {
		clientID = &c
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.invoiceService.ListInvoices(r.Context(), clientID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) TransitionInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoice.TransitionInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.invoiceService.TransitionInvoice(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *invoiceHandlerImpl) ExportInvoice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var actorID *string
	if userID, ok := middleware.UserID(r); ok {
		actorID = &userID
	}

	result, err := h.exportService.ExportInvoice(r.Context(), id, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSV(w, result.Filename, result.Content)
}
