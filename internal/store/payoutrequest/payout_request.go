package payoutrequest

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/vaultpay/payout-backend/internal/model"
)

var (
	// ErrInvalidTransition signals an illegal status jump. It is distinct
	// from not-found so callers can tell a bad id from a bad transition.
	ErrInvalidTransition = errors.New("illegal status transition")

	// ErrNotApprovable signals an approve call on a row that is not in
	// PENDING_RISK. Silently ignoring it would hide a caller bug.
	ErrNotApprovable = errors.New("request is not pending risk review")

	// ErrConcurrentUpdate signals a lost write race; callers retry.
	ErrConcurrentUpdate = errors.New("request was modified concurrently")
)

// statuses that count toward the daily spend aggregate
var dailyTotalStatuses = []model.PayoutStatus{
	model.PayoutStatusApproved,
	model.PayoutStatusSubmitted,
	model.PayoutStatusConfirmed,
}

type Store struct {
}

func New() IStore {
	return &Store{}
}

func (s *Store) Create(db *gorm.DB, toAddress, asset, amount string, now time.Time) (*model.PayoutRequest, error) {
	request := &model.PayoutRequest{
		ID:        uuid.NewString(),
		RequestID: strings.ReplaceAll(uuid.NewString(), "-", ""),
		ToAddress: toAddress,
		Asset:     asset,
		Amount:    amount,
		Status:    model.PayoutStatusPendingRisk,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// request_id carries a unique index; a generator collision surfaces
	// here instead of reaching the chain
	if err := db.Create(request).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create payout request")
	}

	return request, nil
}

func (s *Store) GetByID(db *gorm.DB, id string) (*model.PayoutRequest, error) {
	var request model.PayoutRequest
	if err := db.Where("id = ?", id).First(&request).Error; err != nil {
		return nil, err
	}

	return &request, nil
}

func (s *Store) Approve(db *gorm.DB, id string, now time.Time) (*model.PayoutRequest, error) {
	request, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if request.Status != model.PayoutStatusPendingRisk {
		return nil, errors.Wrapf(ErrNotApprovable, "status %s", request.Status)
	}

	return s.UpdateStatus(db, id, model.PayoutStatusApproved, now, nil)
}

// UpdateStatus moves a row along the transition graph and applies the patch.
// Set-once fields already present on the row are never overwritten; in
// particular a persisted tx_hash survives any later patch.
func (s *Store) UpdateStatus(db *gorm.DB, id string, status model.PayoutStatus, now time.Time, patch *StatusPatch) (*model.PayoutRequest, error) {
	current, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, errors.Wrapf(ErrInvalidTransition, "%s -> %s", current.Status, status)
	}

	updates := map[string]interface{}{
		"status":     status,
		"updated_at": now,
	}
	if patch != nil {
		applyOnce(updates, "risk_reason", current.RiskReason, patch.RiskReason)
		applyOnce(updates, "failed_reason", current.FailedReason, patch.FailedReason)
		applyOnce(updates, "tx_hash", current.TxHash, patch.TxHash)
		applyTimeOnce(updates, "submitted_at", current.SubmittedAt, patch.SubmittedAt)
		applyTimeOnce(updates, "confirmed_at", current.ConfirmedAt, patch.ConfirmedAt)
	}

	// guard on the status we read so racing writers cannot both win
	res := db.Model(&model.PayoutRequest{}).
		Where("id = ? AND status = ?", id, current.Status).
		Updates(updates)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "failed to update payout request")
	}
	if res.RowsAffected == 0 {
		return nil, ErrConcurrentUpdate
	}

	return s.GetByID(db, id)
}

func applyOnce(updates map[string]interface{}, column string, current, next *string) {
	if current == nil && next != nil {
		updates[column] = *next
	}
}

func applyTimeOnce(updates map[string]interface{}, column string, current, next *time.Time) {
	if current == nil && next != nil {
		updates[column] = *next
	}
}

func (s *Store) List(db *gorm.DB, filter ListFilter) ([]model.PayoutRequest, error) {
	first := filter.First
	if first < 1 {
		first = 1
	}
	if first > 100 {
		first = 100
	}

	query := db.Model(&model.PayoutRequest{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.After != "" {
		query = query.Where("id > ?", filter.After)
	}

	var requests []model.PayoutRequest
	if err := query.Order("id ASC").Limit(first).Find(&requests).Error; err != nil {
		return nil, err
	}

	return requests, nil
}

// Claim atomically leases the oldest eligible row. The candidate select and
// the guarded update run in one transaction, and the update re-checks the
// eligibility predicate, so two racing workers never both win; the loser
// gets (nil, nil).
func (s *Store) Claim(db *gorm.DB, eligible []model.PayoutStatus, now time.Time, ownerID string, lease time.Duration) (*model.PayoutRequest, error) {
	var claimed *model.PayoutRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		var candidate model.PayoutRequest
		err := tx.
			Where("status IN ?", eligible).
			Where("lock_expires_at IS NULL OR lock_expires_at < ?", now).
			Order("created_at ASC").
			First(&candidate).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		res := tx.Model(&model.PayoutRequest{}).
			Where("id = ? AND status IN ?", candidate.ID, eligible).
			Where("lock_expires_at IS NULL OR lock_expires_at < ?", now).
			Updates(map[string]interface{}{
				"lock_owner":      ownerID,
				"lock_expires_at": now.Add(lease),
				"updated_at":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// lost the race; not an error
			return nil
		}

		var row model.PayoutRequest
		if err := tx.Where("id = ?", candidate.ID).First(&row).Error; err != nil {
			return err
		}
		claimed = &row
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to claim payout request")
	}

	return claimed, nil
}

// Release clears the lease iff still held by ownerID. An expired or stolen
// lease makes this a no-op, which is expected and harmless.
func (s *Store) Release(db *gorm.DB, id, ownerID string, now time.Time) error {
	return db.Model(&model.PayoutRequest{}).
		Where("id = ? AND lock_owner = ?", id, ownerID).
		Updates(map[string]interface{}{
			"lock_owner":      nil,
			"lock_expires_at": nil,
			"updated_at":      now,
		}).Error
}

// DailyTotal sums amounts over rows created inside the UTC day window whose
// status still counts toward spend (APPROVED, SUBMITTED, CONFIRMED).
func (s *Store) DailyTotal(db *gorm.DB, dayStart, dayEndExclusive time.Time) (*model.BigAmount, error) {
	var amounts []string
	err := db.Model(&model.PayoutRequest{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEndExclusive).
		Where("status IN ?", dailyTotalStatuses).
		Pluck("amount", &amounts).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate daily total")
	}

	total := model.ZeroAmount()
	for _, raw := range amounts {
		amount, err := model.NewBigAmount(raw)
		if err != nil {
			return nil, err
		}
		total = total.Add(amount)
	}

	return total, nil
}
