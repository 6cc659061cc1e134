package product

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
)

const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidName   = errors.New("product name cannot be empty")
	ErrInvalidStatus = errors.New("product status must be 0 or 1")
	ErrInvalidPrice  = errors.New("product price cannot be negative")
)

// AlreadyExistsError reports a name collision on creation.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("product with name '%s' already exists", e.Name)
}

type Entity struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Name       string    `bun:"name,notnull,unique" json:"name"`
	Status     int       `bun:"status,notnull,default:1" json:"status"`
	PriceCents int64     `bun:"price_cents,notnull,default:0" json:"priceCents"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

func New(name string, status int, priceCents int64) (*Entity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if status != StatusDisabled && status != StatusEnabled {
		return nil, ErrInvalidStatus
	}
	if priceCents < 0 {
		return nil, ErrInvalidPrice
	}
	now := time.Now().UTC()
	return &Entity{
		Name:       name,
		Status:     status,
		PriceCents: priceCents,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// Filter is the dynamic query condition for product listings: a non-empty
// Name becomes a contains match, a non-nil Status an equality match.
type Filter struct {
	Name   string
	Status *int
}
