package category

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/uptrace/bun"
)

const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrInvalidSlug   = errors.New("category slug must be lowercase letters, digits, and dashes")
	ErrInvalidName   = errors.New("category name cannot be empty")
	ErrInvalidStatus = errors.New("category status must be 0 or 1")

	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

type AlreadyExistsError struct {
	Slug string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("category with slug '%s' already exists", e.Slug)
}

// Entity is keyed by a caller-chosen slug rather than a generated number,
// which exercises the string-identifier side of the generic repository.
type Entity struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	Slug      string    `bun:"slug,pk" json:"slug"`
	Name      string    `bun:"name,notnull" json:"name"`
	Status    int       `bun:"status,notnull,default:1" json:"status"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}

func New(slug, name string, status int) (*Entity, error) {
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	if status != StatusDisabled && status != StatusEnabled {
		return nil, ErrInvalidStatus
	}
	return &Entity{
		Slug:      slug,
		Name:      name,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}, nil
}
