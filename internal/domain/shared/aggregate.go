package shared

import "github.com/google/uuid"

// AggregateRoot is the base interface for all aggregate roots
type AggregateRoot interface {
	Entity
}

// BaseAggregateRoot provides common fields for aggregate roots.
// The owning user is recorded for attribution; the system is single-tenant
// and keeps no event or version machinery.
type BaseAggregateRoot struct {
	BaseEntity
	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewBaseAggregateRoot creates a new aggregate root owned by the given user
func NewBaseAggregateRoot(createdBy uuid.UUID) BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		CreatedBy:  createdBy,
	}
}
