package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/timeoff"
	"github.com/staffhive/staffhive-backend-go/internal/domain/user"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/middleware"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/response"
)

type TimeOffHandler interface {
	RequestTimeOff(w http.ResponseWriter, r *http.Request)
	GetTimeOff(w http.ResponseWriter, r *http.Request)
	ListTimeOff(w http.ResponseWriter, r *http.Request)
	DecideTimeOff(w http.ResponseWriter, r *http.Request)
}

type timeOffHandlerImpl struct {
	timeOffService timeoff.TimeOffService
}

func NewTimeOffHandler(timeOffService timeoff.TimeOffService) TimeOffHandler {
	return &timeOffHandlerImpl{timeOffService: timeOffService}
}

func (h *timeOffHandlerImpl) RequestTimeOff(w http.ResponseWriter, r *http.Request) {
	var req timeoff.RequestTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timeOffService.RequestTimeOff(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time off requested", result)
}

func (h *timeOffHandlerImpl) GetTimeOff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.timeOffService.GetTimeOff(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeOffHandlerImpl) ListTimeOff(w http.ResponseWriter, r *http.Request) {
	var filter timeoff.TimeOffFilter
	if e := r.URL.Query().Get("employee_id"); e != "" {
		filter.EmployeeID = &e
	}
	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = &s
	}

	result, err := h.timeOffService.ListTimeOff(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timeOffHandlerImpl) DecideTimeOff(w http.ResponseWriter, r *http.Request) {
	var req timeoff.DecideTimeOffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	decidedBy, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, user.ErrInvalidToken)
		return
	}

	result, err := h.timeOffService.DecideTimeOff(r.Context(), req, decidedBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
