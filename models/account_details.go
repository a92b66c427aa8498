package models

// AccountDetails is the account service's record: one bank account
// tied to a profile, a passport and a bank-details row.
type AccountDetails struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	PassportID      int64   `gorm:"not null" json:"passport_id"`
	AccountNumber   int64   `gorm:"not null;unique" json:"account_number"`
	BankDetailsID   int64   `gorm:"not null" json:"bank_details_id"`
	Money           float64 `gorm:"type:decimal(20,2);not null" json:"money"`
	NegativeBalance bool    `gorm:"not null" json:"negative_balance"`
	ProfileID       int64   `gorm:"not null" json:"profile_id"`
}
