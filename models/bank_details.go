package models

// BankDetails is the public-info service's registration record of a
// bank: BIK, INN, KPP and the correspondent account.
type BankDetails struct {
	ID                uint    `gorm:"primaryKey" json:"id"`
	Bik               int64   `gorm:"not null;unique" json:"bik"`
	Inn               int64   `gorm:"not null;unique" json:"inn"`
	Kpp               int64   `gorm:"not null;unique" json:"kpp"`
	CorAccount        float64 `gorm:"type:decimal(20,2);not null" json:"cor_account"`
	City              string  `gorm:"type:varchar(180);not null" json:"city"`
	JointStockCompany string  `gorm:"type:varchar(255);not null" json:"joint_stock_company"`
	Name              string  `gorm:"type:varchar(255);not null" json:"name"`
}
