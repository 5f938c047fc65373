package model

import (
	"errors"
	"strconv"
)

var ErrRegistrationDateRequired = errors.New("date_registration is required")

type Contract struct {
	ID               uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	Name             string `json:"name" binding:"max=30"`
	Address          string `json:"address" binding:"max=255"`
	DateRegistration *Date  `json:"date_registration" binding:"required"`
	DateCompletion   *Date  `json:"date_completion"`
}

func (Contract) TableName() string { return "contracts" }
func (Contract) Kind() string      { return "Contract" }

func (c *Contract) GetID() uint64   { return c.ID }
func (c *Contract) SetID(id uint64) { c.ID = id }

// Validate rejects a registration date that decoded to the zero day, which
// the binding tags let through behind a non-nil pointer.
func (c *Contract) Validate() error {
	if c.DateRegistration == nil || c.DateRegistration.IsZero() {
		return ErrRegistrationDateRequired
	}
	return nil
}

func (c *Contract) Fields() []Field {
	return []Field{
		{Label: "ID", Value: strconv.FormatUint(c.ID, 10)},
		{Label: "Name", Value: c.Name},
		{Label: "Address", Value: c.Address},
		{Label: "Registered", Value: formatDate(c.DateRegistration)},
		{Label: "Completed", Value: formatDate(c.DateCompletion)},
	}
}

func formatDate(d *Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}
