package model

import "time"

// Subscription plan identifiers
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// User is a registered account
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	Company      string    `gorm:"type:varchar(255)" json:"company"`
	Plan         string    `gorm:"type:varchar(32)" json:"plan,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
