package sales

import (
	"strings"

	"github.com/AJCrest412/proxima-be/internal/domain/shared"
)

// ClientAttrs carries the caller-supplied fields of a client. The Arc*
// fields hold the secondary (architect) contact.
type ClientAttrs struct {
	Name       string
	Phone      string
	Address    string
	AttendBy   string
	ArcName    string
	ArcPhone   string
	ArcAddress string
}

// Validate checks the client attributes. Name is required and trimmed;
// everything else is free text.
func (a *ClientAttrs) Validate() error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return shared.NewValidationError("name", "Client name is required.")
	}
	if len(a.Name) > 255 {
		return shared.NewValidationError("name", "Client name cannot exceed 255 characters.")
	}
	return nil
}

// Client represents a customer of the business. A client owns its sales
// exclusively: deleting a client cascades to its sales and their items.
type Client struct {
	shared.BaseEntity
	Name       string `gorm:"type:varchar(255);not null"`
	Phone      string `gorm:"type:varchar(20)"`
	Address    string `gorm:"type:text"`
	AttendBy   string `gorm:"type:varchar(255)"`
	ArcName    string `gorm:"type:varchar(255)"`
	ArcPhone   string `gorm:"type:varchar(20)"`
	ArcAddress string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client from validated attributes
func NewClient(attrs ClientAttrs) (*Client, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		BaseEntity: shared.NewBaseEntity(),
		Name:       attrs.Name,
		Phone:      attrs.Phone,
		Address:    attrs.Address,
		AttendBy:   attrs.AttendBy,
		ArcName:    attrs.ArcName,
		ArcPhone:   attrs.ArcPhone,
		ArcAddress: attrs.ArcAddress,
	}, nil
}

// Apply replaces the client's attributes after validation
func (c *Client) Apply(attrs ClientAttrs) error {
	if err := attrs.Validate(); err != nil {
		return err
	}

	c.Name = attrs.Name
	c.Phone = attrs.Phone
	c.Address = attrs.Address
	c.AttendBy = attrs.AttendBy
	c.ArcName = attrs.ArcName
	c.ArcPhone = attrs.ArcPhone
	c.ArcAddress = attrs.ArcAddress
	c.Touch()

	return nil
}

// String returns the client's display name
func (c *Client) String() string {
	return c.Name
}
