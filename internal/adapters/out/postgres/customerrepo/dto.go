// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName       string     `gorm:"type:varchar(200);not null"`
	Email          string     `gorm:"type:varchar(200);not null;uniqueIndex"`
	DocumentNumber string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	PhoneNumber    string     `gorm:"type:varchar(30);not null"`
	CustomerType   string     `gorm:"type:varchar(30)"`
	BirthDate      *time.Time `gorm:"type:date"`
	Street         string     `gorm:"type:varchar(200)"`
	City           string     `gorm:"type:varchar(200)"`
	State          string     `gorm:"type:varchar(200)"`
	PostalCode     string     `gorm:"type:varchar(200)"`
	Country        string     `gorm:"type:varchar(200)"`
	Notes          string     `gorm:"type:varchar(1000)"`
	IsActive       bool       `gorm:"not null"`
	CreatedAtUTC   time.Time  `gorm:"column:created_at_utc;not null;index"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	p := c.Profile()
	return CustomerDTO{
		ID:             c.ID().Bytes(),
		FullName:       p.FullName,
		Email:          p.Email,
		DocumentNumber: p.DocumentNumber,
		PhoneNumber:    p.PhoneNumber,
		CustomerType:   p.CustomerType,
		BirthDate:      p.BirthDate,
		Street:         p.Street,
		City:           p.City,
		State:          p.State,
		PostalCode:     p.PostalCode,
		Country:        p.Country,
		Notes:          p.Notes,
		IsActive:       c.IsActive(),
		CreatedAtUTC:   c.CreatedAtUTC(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, customer.Profile{
		FullName:       dto.FullName,
		Email:          dto.Email,
		DocumentNumber: dto.DocumentNumber,
		PhoneNumber:    dto.PhoneNumber,
		CustomerType:   dto.CustomerType,
		BirthDate:      dto.BirthDate,
		Street:         dto.Street,
		City:           dto.City,
		State:          dto.State,
		PostalCode:     dto.PostalCode,
		Country:        dto.Country,
		Notes:          dto.Notes,
	}, dto.IsActive, dto.CreatedAtUTC)
}
