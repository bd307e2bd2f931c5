// Package product implements the catalog Product aggregate.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MaxSkuLength  = 64
	MaxNameLength = 200
	PriceScale    = 2
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. The SKU is unique and stored uppercase.
type Product struct {
	id           kernel.UUID
	sku          string
	name         string
	price        decimal.Decimal
	isActive     bool
	createdAtUTC time.Time

	isConstructed bool
}

// NewProduct creates an active product. The price is rounded to two decimal places.
func NewProduct(sku, name string, price decimal.Decimal, createdAtUTC time.Time) (*Product, error) {
	return RestoreProduct(kernel.NewUUID(), sku, name, price, true, createdAtUTC)
}

// RestoreProduct rebuilds a product from storage.
func RestoreProduct(
	id kernel.UUID,
	sku, name string,
	price decimal.Decimal,
	isActive bool,
	createdAtUTC time.Time,
) (*Product, error) {
	p := &Product{
		isActive:      isActive,
		createdAtUTC:  createdAtUTC.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		p.setSku(sku),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}
	p.id = id

	return p, nil
}

// NormalizeSku trims and uppercases a SKU the way it is stored.
func NormalizeSku(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

func (p *Product) Sku() string {
	return p.sku
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) IsActive() bool {
	return p.isActive
}

func (p *Product) CreatedAtUTC() time.Time {
	return p.createdAtUTC
}

func (p *Product) setSku(sku string) error {
	sku = NormalizeSku(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if n := utf8.RuneCountInString(sku); n > MaxSkuLength {
		return errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("length %d exceeds %d", n, MaxSkuLength))
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("length %d exceeds %d", n, MaxNameLength))
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price.Round(PriceScale)
	return nil
}
