package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/workentry"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	SetWorkEntry(w http.ResponseWriter, r *http.Request)
	GetWorkEntry(w http.ResponseWriter, r *http.Request)
	ListByPeriod(w http.ResponseWriter, r *http.Request)
	DeleteWorkEntry(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService workentry.TimesheetService
}

func NewTimesheetHandler(timesheetService workentry.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{timesheetService: timesheetService}
}

func (h *timesheetHandlerImpl) SetWorkEntry(w http.ResponseWriter, r *http.Request) {
	var req workentry.SetWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timesheetService.SetWorkEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) GetWorkEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.timesheetService.GetWorkEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) ListByPeriod(w http.ResponseWriter, r *http.Request) {
	periodID := chi.URLParam(r, "periodID")

	var employeeID *string
	if e := r.URL.Query().Get("employee_id"); e != "" {
		employeeID = &e
	}

	result, err := h.timesheetService.ListByPeriod(r.Context(), periodID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timesheetHandlerImpl) DeleteWorkEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.timesheetService.DeleteWorkEntry(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work entry deleted", nil)
}
