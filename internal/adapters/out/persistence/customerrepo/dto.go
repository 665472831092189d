// Package customerrepo maps the Customer entity to the customers table.
package customerrepo

import (
	"ordering/internal/core/domain/model/customer"
)

// CustomerDTO is the row layout of the customers table.
// The address is stored inline; all-empty address columns mean "no address".
type CustomerDTO struct {
	ID           string     `gorm:"type:varchar(64);primaryKey"`
	Name         string     `gorm:"type:varchar(255);not null"`
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	RewardPoints int        `gorm:"not null"`
	Active       bool       `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is embedded into CustomerDTO with the "address_" column prefix.
type AddressDTO struct {
	Street string `gorm:"type:varchar(255)"`
	Number int
	Zip    string `gorm:"type:varchar(32)"`
	City   string `gorm:"type:varchar(255)"`
}

func (a AddressDTO) isEmpty() bool {
	return a.Street == "" && a.Number == 0 && a.Zip == "" && a.City == ""
}

func fromDomain(c *customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:           c.ID(),
		Name:         c.Name(),
		RewardPoints: c.RewardPoints(),
		Active:       c.IsActive(),
	}
	if a := c.Address(); a != nil {
		dto.Address = AddressDTO{
			Street: a.Street(),
			Number: a.Number(),
			Zip:    a.Zip(),
			City:   a.City(),
		}
	}
	return dto
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	var address *customer.Address
	if !dto.Address.isEmpty() {
		a, err := customer.NewAddress(dto.Address.Street, dto.Address.Number, dto.Address.Zip, dto.Address.City)
		if err != nil {
			return nil, err
		}
		address = &a
	}

	return customer.RestoreCustomer(dto.ID, dto.Name, address, dto.RewardPoints, dto.Active)
}
