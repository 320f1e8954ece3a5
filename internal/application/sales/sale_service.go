package sales

import (
	"context"

	"github.com/google/uuid"

	"github.com/AJCrest412/proxima-be/internal/domain/sales"
	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// SaleService handles sale-related business operations. All item writes go
// through the Sale aggregate so validation and pricing always run together,
// and the repository persists each aggregate change in one transaction.
type SaleService struct {
	saleRepo   sales.SaleRepository
	clientRepo sales.ClientRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo sales.SaleRepository, clientRepo sales.ClientRepository) *SaleService {
	return &SaleService{
		saleRepo:   saleRepo,
		clientRepo: clientRepo,
	}
}

// Create creates a draft sale, optionally attached to an existing client
// and seeded with items. If any item is invalid nothing is persisted.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*SaleResponse, error) {
	var client *sales.Client
	if req.ClientID != nil {
		found, err := s.clientRepo.FindByID(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
		client = found
	}

	sale := sales.NewSale(req.CreatedBy, req.ClientID)
	sale.Client = client

	if len(req.Items) > 0 {
		if _, err := sale.AddItems(itemAttrs(req.Items)); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// GetByID retrieves a sale with its items and client
func (s *SaleService) GetByID(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// List returns sales, optionally narrowed to one client or one status
func (s *SaleService) List(ctx context.Context, filter SaleListFilter) ([]SaleResponse, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.ClientID != nil {
		f.Filters["client_id"] = *filter.ClientID
	}
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	found, err := s.saleRepo.FindAll(ctx, f)
	if err != nil {
		return nil, err
	}

	return ToSaleResponses(found), nil
}

// Update applies a combined change to a sale: client reassignment or edit,
// full item replacement, and a status transition, in that order. Fields not
// present in the request are left untouched. Cancelled sales reject the
// whole request before any field is read.
func (s *SaleService) Update(ctx context.Context, saleID uuid.UUID, req UpdateSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if !sale.CanModify() {
		return nil, shared.NewInvalidStateError("Cannot modify a cancelled sale.")
	}

	switch {
	case req.ClientID != nil:
		client, err := s.clientRepo.FindByID(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
		if err := sale.AssignClient(client); err != nil {
			return nil, err
		}
	case req.Client != nil:
		if err := s.applyClientData(ctx, sale, *req.Client); err != nil {
			return nil, err
		}
	}

	if req.Items != nil {
		if err := sale.ReplaceItems(itemAttrs(*req.Items)); err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := sale.TransitionTo(sales.SaleStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// applyClientData edits the sale's current client in place, or creates and
// assigns a new client when the sale has none yet.
func (s *SaleService) applyClientData(ctx context.Context, sale *sales.Sale, req ClientRequest) error {
	if !sale.CanModify() {
		return shared.NewInvalidStateError("Cannot modify a cancelled sale.")
	}

	if sale.ClientID != nil {
		client, err := s.clientRepo.FindByID(ctx, *sale.ClientID)
		if err != nil {
			return err
		}
		if err := client.Apply(req.Attrs()); err != nil {
			return err
		}
		if err := s.clientRepo.Save(ctx, client); err != nil {
			return err
		}
		sale.Client = client
		return nil
	}

	client, err := sales.NewClient(req.Attrs())
	if err != nil {
		return err
	}
	if err := s.clientRepo.Save(ctx, client); err != nil {
		return err
	}
	return sale.AssignClient(client)
}

// Confirm transitions a draft sale to confirmed. The caller supplies either
// an existing client's id or inline client data from which a new client is
// created; supplying neither is an error. The status is checked before the
// client is resolved so a rejected confirmation never creates a client.
func (s *SaleService) Confirm(ctx context.Context, saleID uuid.UUID, req ConfirmSaleRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if !sale.IsDraft() {
		return nil, shared.NewInvalidStateError("Only draft sales can be confirmed.")
	}

	var client *sales.Client
	switch {
	case req.ClientID != nil:
		client, err = s.clientRepo.FindByID(ctx, *req.ClientID)
		if err != nil {
			return nil, err
		}
	case req.Client != nil:
		client, err = sales.NewClient(req.Client.Attrs())
		if err != nil {
			return nil, err
		}
		if err := s.clientRepo.Save(ctx, client); err != nil {
			return nil, err
		}
	default:
		return nil, shared.NewBadRequestError("Provide client_id or client data.")
	}

	if err := sale.Confirm(client); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// Cancel transitions a sale to cancelled
func (s *SaleService) Cancel(ctx context.Context, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if err := sale.Cancel(); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// AddItems appends items to a sale. All items are validated and priced
// before any is added.
func (s *SaleService) AddItems(ctx context.Context, saleID uuid.UUID, req AddItemsRequest) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	if _, err := sale.AddItems(itemAttrs(req.Items)); err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	response := ToSaleResponse(sale)
	return &response, nil
}

// RemoveItems deletes the given items from a sale and reports how many
// were actually removed. Ids not belonging to the sale are ignored.
func (s *SaleService) RemoveItems(ctx context.Context, saleID uuid.UUID, req RemoveItemsRequest) (int, *SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return 0, nil, err
	}

	removed, err := sale.RemoveItems(req.ItemIDs)
	if err != nil {
		return 0, nil, err
	}

	if removed > 0 {
		if err := s.saleRepo.Save(ctx, sale); err != nil {
			return 0, nil, err
		}
	}

	response := ToSaleResponse(sale)
	return removed, &response, nil
}

// Delete removes a sale and its items
func (s *SaleService) Delete(ctx context.Context, saleID uuid.UUID) error {
	if _, err := s.saleRepo.FindByID(ctx, saleID); err != nil {
		return err
	}

	return s.saleRepo.Delete(ctx, saleID)
}

// ListItems returns one sale's items, optionally narrowed to rooms whose
// name contains the given substring.
func (s *SaleService) ListItems(ctx context.Context, filter SaleItemsFilter) ([]SaleItemResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, filter.SaleID)
	if err != nil {
		return nil, err
	}

	return ToSaleItemResponses(sale.ItemsInRoom(filter.Room)), nil
}

// Choices returns the closed vocabularies used by the sale forms
func (s *SaleService) Choices() ChoicesResponse {
	categories := make([]ChoiceOption, 0, len(sales.AllCategories()))
	for _, c := range sales.AllCategories() {
		categories = append(categories, ChoiceOption{Value: c.String(), Label: c.String()})
	}

	discountTypes := []ChoiceOption{
		{Value: sales.DiscountPercent.String(), Label: "Percentage"},
		{Value: sales.DiscountAmount.String(), Label: "Amount"},
	}

	statuses := []ChoiceOption{
		{Value: sales.SaleStatusDraft.String(), Label: "Draft"},
		{Value: sales.SaleStatusConfirmed.String(), Label: "Confirmed"},
		{Value: sales.SaleStatusCancelled.String(), Label: "Cancelled"},
	}

	return ChoicesResponse{
		Categories:    categories,
		DiscountTypes: discountTypes,
		Statuses:      statuses,
	}
}
