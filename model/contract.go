package model

import (
	"time"
)

// ContractType values accepted by the generator
const (
	TypeEmployment  = "employment"
	TypeNDA         = "nda"
	TypeService     = "service"
	TypeRental      = "rental"
	TypeConsulting  = "consulting"
	TypePartnership = "partnership"
)

// ContractTypes lists the supported contract types
var ContractTypes = []string{
	TypeEmployment,
	TypeNDA,
	TypeService,
	TypeRental,
	TypeConsulting,
	TypePartnership,
}

// ValidContractType reports whether t is a supported contract type
func ValidContractType(t string) bool {
	for _, ct := range ContractTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// ContractRequest holds the user input for one generation attempt
type ContractRequest struct {
	Name              string `json:"name"`
	Company           string `json:"company"`
	Email             string `json:"email"`
	Type              string `json:"type"`
	Description       string `json:"description"`
	AdditionalDetails string `json:"additional_details"`
	Roles             string `json:"roles"`
}

// ContractRecord is one successfully generated and saved contract.
// Rows are created once at the end of a successful save and never mutated.
type ContractRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Type      string    `gorm:"type:varchar(32);not null" json:"type"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	FileURL   string    `gorm:"type:text;not null" json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}
