// Package productrepo persists catalog products with GORM.
package productrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Sku          string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Price        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	IsActive     bool            `gorm:"not null;index"`
	CreatedAtUTC time.Time       `gorm:"column:created_at_utc;not null;index"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID().Bytes(),
		Sku:          p.Sku(),
		Name:         p.Name(),
		Price:        p.Price(),
		IsActive:     p.IsActive(),
		CreatedAtUTC: p.CreatedAtUTC(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Sku, dto.Name, dto.Price, dto.IsActive, dto.CreatedAtUTC)
}
