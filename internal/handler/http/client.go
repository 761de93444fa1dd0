package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
	"github.com/staffhive/staffhive-backend-go/internal/domain/pricing"
	"github.com/staffhive/staffhive-backend-go/internal/handler/http/response"
	"github.com/staffhive/staffhive-backend-go/internal/service/master"
)

type ClientHandler interface {
	CreateClient(w http.ResponseWriter, r *http.Request)
	GetClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)

	CreatePricing(w http.ResponseWriter, r *http.Request)
	ListPricing(w http.ResponseWriter, r *http.Request)
	DeletePricing(w http.ResponseWriter, r *http.Request)
}

type clientHandlerImpl struct {
	clientService client.ClientService
	masterService master.MasterService
}

func NewClientHandler(clientService client.ClientService, masterService master.MasterService) ClientHandler {
	return &clientHandlerImpl{
		clientService: clientService,
		masterService: masterService,
	}
}

func (h *clientHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req client.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.clientService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", result)
}

func (h *clientHandlerImpl) GetClient(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.clientService.GetClient(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *clientHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	result, err := h.clientService.ListClients(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *clientHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req client.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.clientService.UpdateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *clientHandlerImpl) CreatePricing(w http.ResponseWriter, r *http.Request) {
	var req pricing.CreatePricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ClientID = chi.URLParam(r, "id")

	result, err := h.masterService.CreatePricing(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client pricing created", result)
}

func (h *clientHandlerImpl) ListPricing(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "id")

	result, err := h.masterService.ListPricingByClient(r.Context(), clientID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *clientHandlerImpl) DeletePricing(w http.ResponseWriter, r *http.Request) {
	pricingID := chi.URLParam(r, "pricingID")

	if err := h.masterService.DeletePricing(r.Context(), pricingID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client pricing deleted", nil)
}
