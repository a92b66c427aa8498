package dto

import "github.com/mkuznecov/bank-app/models"

type SuspiciousAccountTransferDto struct {
	ID                *uint   `json:"id,omitempty"`
	AccountTransferID *int64  `json:"account_transfer_id,omitempty"`
	IsBlocked         *bool   `json:"is_blocked,omitempty"`
	IsSuspicious      *bool   `json:"is_suspicious,omitempty"`
	BlockedReason     *string `json:"blocked_reason,omitempty"`
	SuspiciousReason  *string `json:"suspicious_reason,omitempty"`
}

func ToSuspiciousAccountTransferDto(e *models.SuspiciousAccountTransfer) *SuspiciousAccountTransferDto {
	if e == nil {
		return nil
	}
	return &SuspiciousAccountTransferDto{
		ID:                ptr(e.ID),
		AccountTransferID: ptr(e.AccountTransferID),
		IsBlocked:         ptr(e.IsBlocked),
		IsSuspicious:      ptr(e.IsSuspicious),
		BlockedReason:     ptr(e.BlockedReason),
		SuspiciousReason:  ptr(e.SuspiciousReason),
	}
}

func ToSuspiciousAccountTransferEntity(d *SuspiciousAccountTransferDto) *models.SuspiciousAccountTransfer {
	if d == nil {
		return nil
	}
	return &models.SuspiciousAccountTransfer{
		AccountTransferID: deref(d.AccountTransferID),
		IsBlocked:         deref(d.IsBlocked),
		IsSuspicious:      deref(d.IsSuspicious),
		BlockedReason:     deref(d.BlockedReason),
		SuspiciousReason:  deref(d.SuspiciousReason),
	}
}

func MergeSuspiciousAccountTransfer(d *SuspiciousAccountTransferDto, e *models.SuspiciousAccountTransfer) *models.SuspiciousAccountTransfer {
	if e == nil {
		return nil
	}
	merged := *e
	if d == nil {
		return &merged
	}
	if d.AccountTransferID != nil {
		merged.AccountTransferID = *d.AccountTransferID
	}
	if d.IsBlocked != nil {
		merged.IsBlocked = *d.IsBlocked
	}
	if d.IsSuspicious != nil {
		merged.IsSuspicious = *d.IsSuspicious
	}
	if d.BlockedReason != nil {
		merged.BlockedReason = *d.BlockedReason
	}
	if d.SuspiciousReason != nil {
		merged.SuspiciousReason = *d.SuspiciousReason
	}
	return &merged
}

func ToSuspiciousAccountTransferDtoList(es []models.SuspiciousAccountTransfer) []SuspiciousAccountTransferDto {
	if es == nil {
		return nil
	}
	dtos := make([]SuspiciousAccountTransferDto, len(es))
	for i := range es {
		dtos[i] = *ToSuspiciousAccountTransferDto(&es[i])
	}
	return dtos
}
