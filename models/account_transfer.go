package models

// AccountTransfer is one money transfer by account number in the
// transfer service.
type AccountTransfer struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	AccountNumber    int64   `gorm:"not null;unique" json:"account_number"`
	Amount           float64 `gorm:"type:decimal(20,2);not null" json:"amount"`
	Purpose          string  `gorm:"type:varchar(255)" json:"purpose"`
	AccountDetailsID int64   `gorm:"not null" json:"account_details_id"`
}
