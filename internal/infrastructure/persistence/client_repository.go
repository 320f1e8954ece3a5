package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AJCrest412/proxima-be/internal/domain/sales"
	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// GormClientRepository implements sales.ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Client, error) {
	var client sales.Client
	if err := r.db.WithContext(ctx).First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Client")
		}
		return nil, err
	}
	return &client, nil
}

// FindAll returns a page of clients plus the total count. The search term
// matches name, phone and architect name substrings, case-insensitively.
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Client, int64, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&sales.Client{})
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(phone) LIKE ? OR LOWER(arc_name) LIKE ?",
			term, term, term,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []sales.Client
	err := query.
		Order(fmt.Sprintf("%s %s", filter.OrderBy, filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&clients).Error
	if err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// Save inserts or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *sales.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete removes the client, its sales and their items in one transaction
func (r *GormClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var saleIDs []uuid.UUID
		if err := tx.Model(&sales.Sale{}).Where("client_id = ?", id).Pluck("id", &saleIDs).Error; err != nil {
			return err
		}

		if len(saleIDs) > 0 {
			if err := tx.Where("sale_id IN ?", saleIDs).Delete(&sales.SaleItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", saleIDs).Delete(&sales.Sale{}).Error; err != nil {
				return err
			}
		}

		return tx.Where("id = ?", id).Delete(&sales.Client{}).Error
	})
}
