package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/payroll"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/response"
	"github.com/staffhive/staffhive-backend-go/internal/service/export"
)

type PayrollHandler interface {
	GenerateRun(w http.ResponseWriter, r *http.Request)
	GetRun(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	TransitionRun(w http.ResponseWriter, r *http.Request)
	ExportRun(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	exportService  export.ExportService
}

func NewPayrollHandler(payrollService payroll.PayrollService, exportService export.ExportService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		exportService:  exportService,
	}
}

func (h *payrollHandlerImpl) GenerateRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.GenerateRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GenerateRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll run generated", result)
}

func (h *payrollHandlerImpl) GetRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetRun(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.payrollService.ListRuns(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) TransitionRun(w http.ResponseWriter, r *http.Request) {
	var req payroll.TransitionRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.TransitionRun(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ExportRun(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var actorID *string
	if userID, ok := middleware.UserID(r); ok {
		actorID = &userID
	}

	result, err := h.exportService.ExportPayrollRun(r.Context(), id, actorID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.CSV(w, result.Filename, result.Content)
}
