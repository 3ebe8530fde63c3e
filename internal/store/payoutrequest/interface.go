package payoutrequest

import (
	"time"

	"gorm.io/gorm"

	"github.com/vaultpay/payout-backend/internal/model"
)

// StatusPatch carries the set-once diagnostic fields applied alongside a
// status transition. Nil fields are left untouched.
type StatusPatch struct {
	RiskReason   *string
	TxHash       *string
	SubmittedAt  *time.Time
	ConfirmedAt  *time.Time
	FailedReason *string
}

type ListFilter struct {
	Status *model.PayoutStatus
	First  int
	After  string
}

type IStore interface {
	Create(db *gorm.DB, toAddress, asset, amount string, now time.Time) (*model.PayoutRequest, error)
	GetByID(db *gorm.DB, id string) (*model.PayoutRequest, error)
	Approve(db *gorm.DB, id string, now time.Time) (*model.PayoutRequest, error)
	UpdateStatus(db *gorm.DB, id string, status model.PayoutStatus, now time.Time, patch *StatusPatch) (*model.PayoutRequest, error)
	List(db *gorm.DB, filter ListFilter) ([]model.PayoutRequest, error)
	Claim(db *gorm.DB, eligible []model.PayoutStatus, now time.Time, ownerID string, lease time.Duration) (*model.PayoutRequest, error)
	Release(db *gorm.DB, id, ownerID string, now time.Time) error
	DailyTotal(db *gorm.DB, dayStart, dayEndExclusive time.Time) (*model.BigAmount, error)
}
