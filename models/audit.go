package models

import "time"

// Audit is the before/after change log every service writes for its
// own records. One row per create or update; rows are never mutated
// afterwards.
type Audit struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	EntityType    string     `gorm:"type:varchar(40);not null" json:"entity_type"`
	OperationType string     `gorm:"type:varchar(255);not null" json:"operation_type"`
	CreatedBy     string     `gorm:"type:varchar(255);not null" json:"created_by"`
	ModifiedBy    string     `gorm:"type:varchar(255)" json:"modified_by"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	ModifiedAt    *time.Time `json:"modified_at"`
	NewEntityJSON string     `gorm:"type:text" json:"new_entity_json"`
	EntityJSON    string     `gorm:"type:text;not null" json:"entity_json"`
}
