package models

// Branch is a bank branch in the public-info service. Working hours
// are stored as HH:MM strings; nothing interprets them.
type Branch struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Address     string `gorm:"type:varchar(370);not null" json:"address"`
	PhoneNumber int64  `gorm:"not null;unique" json:"phone_number"`
	City        string `gorm:"type:varchar(250);not null" json:"city"`
	StartOfWork string `gorm:"type:varchar(5);not null" json:"start_of_work"`
	EndOfWork   string `gorm:"type:varchar(5);not null" json:"end_of_work"`
}
