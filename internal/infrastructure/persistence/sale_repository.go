package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AJCrest412/proxima-be/internal/domain/sales"
	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// GormSaleRepository implements sales.SaleRepository using GORM. The Sale
// aggregate is persisted as a unit: every Save runs in one transaction that
// upserts the sale's current items and deletes the ones the aggregate no
// longer holds.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its items and client
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sale_items.created_at ASC")
		}).
		Preload("Client").
		First(&sale, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("Sale")
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll returns sales matching the filter. Supported filter keys are
// client_id and status.
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]sales.Sale, error) {
	filter.Normalize()

	query := r.db.WithContext(ctx).Model(&sales.Sale{})
	if clientID, ok := filter.Filters["client_id"]; ok {
		query = query.Where("client_id = ?", clientID)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var found []sales.Sale
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sale_items.created_at ASC")
		}).
		Preload("Client").
		Order(fmt.Sprintf("%s %s", filter.OrderBy, filter.OrderDir)).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&found).Error
	if err != nil {
		return nil, err
	}

	return found, nil
}

// Save persists the sale and its full item set atomically. Items that were
// removed from the aggregate are deleted; the rest are upserted.
func (r *GormSaleRepository) Save(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "Client").Save(sale).Error; err != nil {
			return err
		}

		keptIDs := make([]uuid.UUID, 0, len(sale.Items))
		for _, item := range sale.Items {
			keptIDs = append(keptIDs, item.ID)
		}

		prune := tx.Where("sale_id = ?", sale.ID)
		if len(keptIDs) > 0 {
			prune = prune.Where("id NOT IN ?", keptIDs)
		}
		if err := prune.Delete(&sales.SaleItem{}).Error; err != nil {
			return err
		}

		for idx := range sale.Items {
			if err := tx.Save(&sale.Items[idx]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a sale and its items in one transaction
func (r *GormSaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sale_id = ?", id).Delete(&sales.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&sales.Sale{}).Error
	})
}
