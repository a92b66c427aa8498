package models

// SuspiciousAccountTransfer is the antifraud service's verdict on a
// single account transfer. AccountTransferID points into the transfer
// service and is never dereferenced here.
type SuspiciousAccountTransfer struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	AccountTransferID int64  `gorm:"not null;unique" json:"account_transfer_id"`
	IsBlocked         bool   `gorm:"not null" json:"is_blocked"`
	IsSuspicious      bool   `gorm:"not null" json:"is_suspicious"`
	BlockedReason     string `gorm:"type:varchar(255)" json:"blocked_reason"`
	SuspiciousReason  string `gorm:"type:varchar(255);not null" json:"suspicious_reason"`
}
