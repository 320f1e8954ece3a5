package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/AJCrest412/proxima-be/internal/domain/sales"
	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo sales.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo sales.ClientRepository) *ClientService {
	return &ClientService{
		clientRepo: clientRepo,
	}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req ClientRequest) (*ClientResponse, error) {
	client, err := sales.NewClient(req.Attrs())
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, clientID uuid.UUID) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// List returns a page of clients. The search term matches name, phone and
// architect name substrings, case-insensitively.
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) (*shared.Paginated[ClientResponse], error) {
	f := shared.DefaultFilter()
	f.Search = filter.Search
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}

	clients, total, err := s.clientRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, 0, len(clients))
	for idx := range clients {
		responses = append(responses, ToClientResponse(&clients[idx]))
	}

	page := shared.NewPaginated(responses, total, f.Page, f.PageSize)
	return &page, nil
}

// Update replaces a client's attributes
func (s *ClientService) Update(ctx context.Context, clientID uuid.UUID, req ClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := client.Apply(req.Attrs()); err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client together with its sales and their items.
// It returns the deleted client's name for the confirmation message.
func (s *ClientService) Delete(ctx context.Context, clientID uuid.UUID) (string, error) {
	client, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return "", err
	}

	if err := s.clientRepo.Delete(ctx, clientID); err != nil {
		return "", err
	}

	return client.Name, nil
}
