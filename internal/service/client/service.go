package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffhive/staffhive-backend-go/internal/domain/client"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo}
}

func toResponse(c client.Client) client.ClientResponse {
	return client.ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		IsActive:     c.IsActive,
	}
}

// CreateClient implements client.ClientService.
func (s *ClientServiceImpl) CreateClient(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		Name:         req.Name,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		IsActive:     true,
	})
	if err != nil {
		if errors.Is(err, client.ErrClientNameExists) {
			return client.ClientResponse{}, client.ErrClientNameExists
		}
		return client.ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}

	return toResponse(created), nil
}

// GetClient implements client.ClientService.
func (s *ClientServiceImpl) GetClient(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return client.ClientResponse{}, client.ErrClientNotFound
		}
		return client.ClientResponse{}, fmt.Errorf("failed to get client: %w", err)
	}

	return toResponse(c), nil
}

// ListClients implements client.ClientService.
func (s *ClientServiceImpl) ListClients(ctx context.Context, activeOnly bool) ([]client.ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, toResponse(c))
	}

	return responses, nil
}

// UpdateClient implements client.ClientService.
func (s *ClientServiceImpl) UpdateClient(ctx context.Context, req client.UpdateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	c, err := s.clientRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			return client.ClientResponse{}, client.ErrClientNotFound
		}
		return client.ClientResponse{}, fmt.Errorf("failed to get client: %w", err)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.ContactName != nil {
		c.ContactName = req.ContactName
	}
	if req.ContactEmail != nil {
		c.ContactEmail = req.ContactEmail
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}

	updated, err := s.clientRepo.Update(ctx, c)
	if err != nil {
		if errors.Is(err, client.ErrClientNameExists) {
			return client.ClientResponse{}, client.ErrClientNameExists
		}
		return client.ClientResponse{}, fmt.Errorf("failed to update client: %w", err)
	}

	return toResponse(updated), nil
}
