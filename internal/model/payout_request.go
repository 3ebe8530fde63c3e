package model

import (
	"time"
)

type PayoutStatus string

const (
	PayoutStatusPendingRisk PayoutStatus = "PENDING_RISK"
	PayoutStatusApproved    PayoutStatus = "APPROVED"
	PayoutStatusRejected    PayoutStatus = "REJECTED"
	PayoutStatusSubmitted   PayoutStatus = "SUBMITTED"
	PayoutStatusConfirmed   PayoutStatus = "CONFIRMED"
	PayoutStatusFailed      PayoutStatus = "FAILED"
)

// allowedTransitions is the full status graph. Terminal statuses have no
// outgoing edges.
var allowedTransitions = map[PayoutStatus][]PayoutStatus{
	PayoutStatusPendingRisk: {PayoutStatusApproved, PayoutStatusRejected},
	PayoutStatusApproved:    {PayoutStatusSubmitted, PayoutStatusRejected},
	PayoutStatusSubmitted:   {PayoutStatusConfirmed, PayoutStatusFailed},
	PayoutStatusRejected:    {},
	PayoutStatusConfirmed:   {},
	PayoutStatusFailed:      {},
}

func (s PayoutStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s PayoutStatus) Terminal() bool {
	next, ok := allowedTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo reports whether next is reachable from s. A same-status
// update is legal so patches can be applied without moving the row.
func (s PayoutStatus) CanTransitionTo(next PayoutStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PayoutRequest struct {
	ID        string       `gorm:"column:id;type:varchar(64);primaryKey" json:"id"`
	RequestID string       `gorm:"column:request_id;type:varchar(64);not null;uniqueIndex" json:"request_id"`
	ToAddress string       `gorm:"column:to_address;type:varchar(255);not null" json:"to_address"`
	Asset     string       `gorm:"column:asset;type:varchar(50);not null" json:"asset"`
	Amount    string       `gorm:"column:amount;type:varchar(255);not null" json:"amount"`
	Status    PayoutStatus `gorm:"column:status;type:varchar(50);not null;default:'PENDING_RISK'" json:"status"`

	RiskReason   *string    `gorm:"column:risk_reason;type:text" json:"risk_reason,omitempty"`
	TxHash       *string    `gorm:"column:tx_hash;type:varchar(255)" json:"tx_hash,omitempty"`
	SubmittedAt  *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	ConfirmedAt  *time.Time `gorm:"column:confirmed_at" json:"confirmed_at,omitempty"`
	FailedReason *string    `gorm:"column:failed_reason;type:text" json:"failed_reason,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`

	// Lease annotation, not business state.
	LockOwner     *string    `gorm:"column:lock_owner;type:varchar(255)" json:"-"`
	LockExpiresAt *time.Time `gorm:"column:lock_expires_at" json:"-"`
}

func (PayoutRequest) TableName() string {
	return "payout_requests"
}
