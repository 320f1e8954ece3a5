package sales

import (
	"strings"

	"github.com/google/uuid"

	"github.com/AJCrest412/proxima-be/internal/domain/shared"
	"github.com/AJCrest412/proxima-be/internal/domain/shared/valueobject"
)

// Lifecycle error messages surfaced verbatim to callers.
const (
	msgOnlyDraftConfirmable = "Only draft sales can be confirmed."
	msgAlreadyCancelled     = "Sale already cancelled."
	msgCancelledImmutable   = "Cannot modify a cancelled sale."
)

// Sale is the aggregate root for a sales order. It owns its line items
// exclusively; items are created, replaced and removed only through the
// aggregate so that validation and pricing always run together.
type Sale struct {
	shared.BaseAggregateRoot
	ClientID *uuid.UUID `gorm:"type:uuid;index"`
	Client   *Client    `gorm:"foreignKey:ClientID;references:ID"`
	Status   SaleStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	Items    []SaleItem `gorm:"foreignKey:SaleID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates a sale in draft status owned by the creating user
func NewSale(createdBy uuid.UUID, clientID *uuid.UUID) *Sale {
	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(createdBy),
		ClientID:          clientID,
		Status:            SaleStatusDraft,
		Items:             make([]SaleItem, 0),
	}
}

// CanModify reports whether items and fields may still be mutated.
// Confirmed sales stay mutable; only cancellation freezes a sale.
func (s *Sale) CanModify() bool {
	return s.Status != SaleStatusCancelled
}

// AddItems validates and prices every attribute set before appending any
// of them. If one item fails, none are added and the field error is
// returned.
func (s *Sale) AddItems(attrs []SaleItemAttrs) ([]SaleItem, error) {
	if !s.CanModify() {
		return nil, shared.NewInvalidStateError(msgCancelledImmutable)
	}

	items := make([]SaleItem, 0, len(attrs))
	for _, a := range attrs {
		item, err := NewSaleItem(s.ID, a)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	s.Items = append(s.Items, items...)
	s.Touch()

	return items, nil
}

// RemoveItems deletes the items whose ids are in the given list and
// returns how many were removed. Ids that do not belong to this sale are
// silently ignored.
func (s *Sale) RemoveItems(itemIDs []uuid.UUID) (int, error) {
	if !s.CanModify() {
		return 0, shared.NewInvalidStateError(msgCancelledImmutable)
	}

	ids := make(map[uuid.UUID]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		ids[id] = struct{}{}
	}

	kept := s.Items[:0]
	removed := 0
	for _, item := range s.Items {
		if _, ok := ids[item.ID]; ok {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.Items = kept

	if removed > 0 {
		s.Touch()
	}
	return removed, nil
}

// ReplaceItems swaps the entire item set for the given attributes. The
// replacement set is validated and priced in full before the old items are
// dropped, so a failing replacement leaves the sale unchanged.
func (s *Sale) ReplaceItems(attrs []SaleItemAttrs) error {
	if !s.CanModify() {
		return shared.NewInvalidStateError(msgCancelledImmutable)
	}

	items := make([]SaleItem, 0, len(attrs))
	for _, a := range attrs {
		item, err := NewSaleItem(s.ID, a)
		if err != nil {
			return err
		}
		items = append(items, *item)
	}

	s.Items = items
	s.Touch()

	return nil
}

// Confirm transitions the sale from draft to confirmed, attaching the
// given client. The client must already be persisted (or validated) by the
// caller; the aggregate only records the association.
func (s *Sale) Confirm(client *Client) error {
	if s.Status != SaleStatusDraft {
		return shared.NewInvalidStateError(msgOnlyDraftConfirmable)
	}

	s.ClientID = &client.ID
	s.Client = client
	s.Status = SaleStatusConfirmed
	s.Touch()

	return nil
}

// Cancel transitions the sale to cancelled. Allowed from draft or
// confirmed; a cancelled sale cannot be cancelled again.
func (s *Sale) Cancel() error {
	if s.Status == SaleStatusCancelled {
		return shared.NewInvalidStateError(msgAlreadyCancelled)
	}

	s.Status = SaleStatusCancelled
	s.Touch()

	return nil
}

// TransitionTo applies a status change requested through the generic
// update path, enforcing the same transition rules as Confirm/Cancel.
func (s *Sale) TransitionTo(target SaleStatus) error {
	if target == s.Status {
		return nil
	}
	if !s.Status.CanTransitionTo(target) {
		switch target {
		case SaleStatusConfirmed:
			return shared.NewInvalidStateError(msgOnlyDraftConfirmable)
		case SaleStatusCancelled:
			return shared.NewInvalidStateError(msgAlreadyCancelled)
		default:
			return shared.NewInvalidStateError("Cannot move a sale back to draft.")
		}
	}

	s.Status = target
	s.Touch()

	return nil
}

// AssignClient sets the sale's client without a status change
func (s *Sale) AssignClient(client *Client) error {
	if !s.CanModify() {
		return shared.NewInvalidStateError(msgCancelledImmutable)
	}

	s.ClientID = &client.ID
	s.Client = client
	s.Touch()

	return nil
}

// TotalAmount recomputes the sale total by summing the items' totals,
// rounded to two decimal places half-up. The value is derived on demand
// and never stored independently of the items.
func (s *Sale) TotalAmount() valueobject.Money {
	total := valueobject.Zero()
	for _, item := range s.Items {
		total = total.Add(valueobject.NewMoney(item.TotalAmount))
	}
	return total.RoundHalfUp()
}

// ItemCount returns the number of items in the sale
func (s *Sale) ItemCount() int {
	return len(s.Items)
}

// ItemsInRoom returns the items whose room contains the given substring,
// case-insensitively. An empty query returns all items.
func (s *Sale) ItemsInRoom(query string) []SaleItem {
	matched := make([]SaleItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.MatchesRoom(query) {
			matched = append(matched, item)
		}
	}
	return matched
}

// GetItem returns an item by its ID, or nil if not present
func (s *Sale) GetItem(itemID uuid.UUID) *SaleItem {
	for idx := range s.Items {
		if s.Items[idx].ID == itemID {
			return &s.Items[idx]
		}
	}
	return nil
}

// IsDraft returns true if the sale is in draft status
func (s *Sale) IsDraft() bool {
	return s.Status == SaleStatusDraft
}

// IsConfirmed returns true if the sale is confirmed
func (s *Sale) IsConfirmed() bool {
	return s.Status == SaleStatusConfirmed
}

// IsCancelled returns true if the sale is cancelled
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
