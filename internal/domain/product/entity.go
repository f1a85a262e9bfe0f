package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("product name is required")
	ErrNegativePrice = errors.New("product price cannot be negative")
)

type Product struct {
	id          uuid.UUID
	storeID     uuid.UUID
	name        string
	description string
	priceCents  int64
	category    string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(storeID uuid.UUID, name, description string, priceCents int64, category string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:          uuid.New(),
		storeID:     storeID,
		name:        name,
		description: strings.TrimSpace(description),
		priceCents:  priceCents,
		category:    strings.TrimSpace(category),
		active:      true,
	}, nil
}

func Reconstruct(
	id, storeID uuid.UUID,
	name, description string,
	priceCents int64,
	category string,
	active bool,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:          id,
		storeID:     storeID,
		name:        name,
		description: description,
		priceCents:  priceCents,
		category:    category,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (p *Product) Update(name, description string, priceCents int64, category string, active bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if priceCents < 0 {
		return ErrNegativePrice
	}

	p.name = name
	p.description = strings.TrimSpace(description)
	p.priceCents = priceCents
	p.category = strings.TrimSpace(category)
	p.active = active
	return nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) StoreID() uuid.UUID   { return p.storeID }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) PriceCents() int64    { return p.priceCents }
func (p *Product) Category() string     { return p.category }
func (p *Product) IsActive() bool       { return p.active }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
