package models

// User is the authorization service's record. Password holds a bcrypt
// hash, never the raw value.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Role      string `gorm:"type:varchar(40);not null" json:"role"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	ProfileID int64  `gorm:"not null;unique" json:"profile_id"`
}
