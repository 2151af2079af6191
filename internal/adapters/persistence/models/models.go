package models

import (
	"time"

	"gorm.io/gorm"
)

// ============================================
// Identity Models
// ============================================

// Credential is a locally managed sign-in secret for a provisioned employee
type Credential struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Identifier        string         `gorm:"size:191;uniqueIndex;not null" json:"identifier"`
	EmployeeID        string         `gorm:"size:50;index;not null" json:"employee_id"`
	PasswordHash      string         `gorm:"size:255" json:"-"`
	Verified          bool           `gorm:"default:false" json:"verified"`
	LastLoginAt       *time.Time     `json:"last_login_at,omitempty"`
	PasswordChangedAt *time.Time     `json:"password_changed_at,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Credential
func (Credential) TableName() string {
	return "credentials"
}

// HasPassword reports whether registration has been completed
func (c *Credential) HasPassword() bool {
	return c.PasswordHash != ""
}

// OneTimeCode stores a hashed OTP issued to an identifier
type OneTimeCode struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Identifier string     `gorm:"size:191;index:idx_otc_lookup;not null" json:"identifier"`
	Purpose    string     `gorm:"size:20;index:idx_otc_lookup;not null" json:"purpose"`
	CodeHash   string     `gorm:"size:64;not null" json:"-"`
	Attempts   int        `gorm:"default:0" json:"attempts"`
	ExpiresAt  time.Time  `gorm:"index;not null" json:"expires_at"`
	ConsumedAt *time.Time `json:"consumed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TableName specifies the table name for OneTimeCode
func (OneTimeCode) TableName() string {
	return "one_time_codes"
}

// IsExpired checks whether the code is past its expiry
func (o *OneTimeCode) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// IsConsumed checks whether the code was already used or superseded
func (o *OneTimeCode) IsConsumed() bool {
	return o.ConsumedAt != nil
}

// ============================================
// Workspace Models
// ============================================

// PersistedState is the durable auth/profile blob of one client workspace
type PersistedState struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Data      string    `gorm:"type:text;not null" json:"data"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// TableName specifies the table name for PersistedState
func (PersistedState) TableName() string {
	return "workspace_states"
}

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Credential{},
		&OneTimeCode{},
		&PersistedState{},
	)
}
