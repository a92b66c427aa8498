package models

// History correlates one business transaction across the six services:
// each column holds the audit-row id the named service produced for
// it. The ids are opaque here; the history service never checks that
// they exist in their owning services.
type History struct {
	ID                    uint   `gorm:"primaryKey" json:"id"`
	TransferAuditID       *int64 `json:"transfer_audit_id"`
	ProfileAuditID        *int64 `json:"profile_audit_id"`
	AccountAuditID        *int64 `json:"account_audit_id"`
	AntiFraudAuditID      *int64 `json:"anti_fraud_audit_id"`
	PublicBankInfoAuditID *int64 `json:"public_bank_info_audit_id"`
	AuthorizationAuditID  *int64 `json:"authorization_audit_id"`
}
