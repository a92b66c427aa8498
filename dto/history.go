package dto

import "github.com/mkuznecov/bank-app/models"

// HistoryDto mirrors the correlation record: six optional audit ids,
// one per originating service.
type HistoryDto struct {
	ID                    *uint  `json:"id,omitempty"`
	TransferAuditID       *int64 `json:"transfer_audit_id,omitempty"`
	ProfileAuditID        *int64 `json:"profile_audit_id,omitempty"`
	AccountAuditID        *int64 `json:"account_audit_id,omitempty"`
	AntiFraudAuditID      *int64 `json:"anti_fraud_audit_id,omitempty"`
	PublicBankInfoAuditID *int64 `json:"public_bank_info_audit_id,omitempty"`
	AuthorizationAuditID  *int64 `json:"authorization_audit_id,omitempty"`
}

func ToHistoryDto(e *models.History) *HistoryDto {
	if e == nil {
		return nil
	}
	return &HistoryDto{
		ID:                    ptr(e.ID),
		TransferAuditID:       e.TransferAuditID,
		ProfileAuditID:        e.ProfileAuditID,
		AccountAuditID:        e.AccountAuditID,
		AntiFraudAuditID:      e.AntiFraudAuditID,
		PublicBankInfoAuditID: e.PublicBankInfoAuditID,
		AuthorizationAuditID:  e.AuthorizationAuditID,
	}
}

func ToHistoryEntity(d *HistoryDto) *models.History {
	if d == nil {
		return nil
	}
	return &models.History{
		TransferAuditID:       d.TransferAuditID,
		ProfileAuditID:        d.ProfileAuditID,
		AccountAuditID:        d.AccountAuditID,
		AntiFraudAuditID:      d.AntiFraudAuditID,
		PublicBankInfoAuditID: d.PublicBankInfoAuditID,
		AuthorizationAuditID:  d.AuthorizationAuditID,
	}
}

// MergeHistory overlays only the audit ids the patch actually carries,
// so recording one service's audit id never clears the other five.
func MergeHistory(d *HistoryDto, e *models.History) *models.History {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.TransferAuditID != nil {
		merged.TransferAuditID = d.TransferAuditID
	}
	if d.ProfileAuditID != nil {
		merged.ProfileAuditID = d.ProfileAuditID
	}
	if d.AccountAuditID != nil {
		merged.AccountAuditID = d.AccountAuditID
	}
	if d.AntiFraudAuditID != nil {
		merged.AntiFraudAuditID = d.AntiFraudAuditID
	}
	if d.PublicBankInfoAuditID != nil {
		merged.PublicBankInfoAuditID = d.PublicBankInfoAuditID
	}
	if d.AuthorizationAuditID != nil {
		merged.AuthorizationAuditID = d.AuthorizationAuditID
	}
	return &merged
}

func ToHistoryDtoList(es []models.History) []HistoryDto {
	if es == nil {
		return nil
	}
	dtos := make([]HistoryDto, len(es))
	for i := range es {
		dtos[i] = *ToHistoryDto(&es[i])
	}
	return dtos
}
