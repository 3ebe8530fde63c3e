package worker

import (
	"time"

	"gorm.io/gorm"

	"github.com/vaultpay/payout-backend/internal/chainrpc"
	"github.com/vaultpay/payout-backend/internal/model"
	"github.com/vaultpay/payout-backend/internal/monitoring"
	"github.com/vaultpay/payout-backend/internal/risk"
	"github.com/vaultpay/payout-backend/internal/store"
	"github.com/vaultpay/payout-backend/internal/store/payoutrequest"
	"github.com/vaultpay/payout-backend/internal/utils/config"
	"github.com/vaultpay/payout-backend/internal/utils/logger"
)

const revertedReason = "transaction reverted"

// claim order is FIFO by creation time across both tick-eligible statuses
var tickEligibleStatuses = []model.PayoutStatus{
	model.PayoutStatusApproved,
	model.PayoutStatusSubmitted,
}

type Worker struct {
	db            *gorm.DB
	store         *store.Store
	chainRpc      chainrpc.IChainRPC
	riskChecker   risk.IChecker
	confirmations int64
	logger        *logger.Logger
	metrics       *monitoring.WorkerMetrics
}

func New(db *gorm.DB, s *store.Store, chainRpc chainrpc.IChainRPC, riskChecker risk.IChecker,
	appConfig *config.AppConfig, logger *logger.Logger, metrics *monitoring.WorkerMetrics) IWorker {
	confirmations := int64(appConfig.Risk.Confirmations)
	if confirmations < 1 {
		confirmations = 1
	}

	return &Worker{
		db:            db,
		store:         s,
		chainRpc:      chainRpc,
		riskChecker:   riskChecker,
		confirmations: confirmations,
		logger:        logger,
		metrics:       metrics,
	}
}

// Tick claims at most one request and drives it one step forward. Chain
// errors terminalize the row and never escape; only store-level failures
// propagate, so the scheduling loop survives any single bad row.
func (w *Worker) Tick(workerID string, now time.Time, lease time.Duration) (TickResult, error) {
	started := time.Now()
	result, err := w.tick(workerID, now, lease)
	if w.metrics != nil {
		w.metrics.RecordTick(string(result.Action), time.Since(started))
	}
	return result, err
}

func (w *Worker) tick(workerID string, now time.Time, lease time.Duration) (TickResult, error) {
	claimed, err := w.store.PayoutRequest.Claim(w.db, tickEligibleStatuses, now, workerID, lease)
	if err != nil {
		return TickResult{Action: ActionNone}, err
	}
	if claimed == nil {
		return TickResult{Action: ActionNone}, nil
	}

	defer func() {
		if err := w.store.PayoutRequest.Release(w.db, claimed.ID, workerID, now); err != nil {
			w.logger.Error("[Tick][Release]", map[string]string{
				"id":    claimed.ID,
				"error": err.Error(),
			})
		}
	}()

	if claimed.Status == model.PayoutStatusApproved {
		return w.processApproved(claimed, workerID, now)
	}
	return w.pollReceipt(claimed, now, ActionNone)
}

func (w *Worker) processApproved(claimed *model.PayoutRequest, workerID string, now time.Time) (TickResult, error) {
	dayStart := utcDayStart(now)
	dayEnd := dayStart.Add(24 * time.Hour)

	// the aggregate read and a policy rejection commit in one transaction
	var verdict risk.CheckResult
	err := store.DoInTx(w.db, func(tx *gorm.DB) error {
		dailyTotal, err := w.store.PayoutRequest.DailyTotal(tx, dayStart, dayEnd)
		if err != nil {
			return err
		}

		// the claimed row is still APPROVED and counted by the aggregate; take
		// it back out so its amount is not held against itself
		if !claimed.CreatedAt.Before(dayStart) && claimed.CreatedAt.Before(dayEnd) {
			if own, err := model.NewBigAmount(claimed.Amount); err == nil {
				dailyTotal = dailyTotal.Sub(own)
			}
		}

		verdict = w.riskChecker.Check(claimed, dailyTotal)
		if !verdict.OK {
			_, err := w.store.PayoutRequest.UpdateStatus(tx, claimed.ID, model.PayoutStatusRejected, now,
				&payoutrequest.StatusPatch{RiskReason: &verdict.Reason})
			return err
		}
		return nil
	})
	if err != nil {
		return TickResult{Action: ActionNone}, err
	}
	if !verdict.OK {
		w.logger.Info("payout rejected by risk policy", map[string]string{
			"id":     claimed.ID,
			"worker": workerID,
			"reason": verdict.Reason,
		})
		return TickResult{ClaimedID: claimed.ID, Action: ActionRejected}, nil
	}

	if claimed.TxHash != nil {
		// crash recovery: a prior tick submitted but died before recording
		// SUBMITTED. Never resubmit; promote and poll the receipt instead.
		submittedAt := now
		if claimed.SubmittedAt != nil {
			submittedAt = *claimed.SubmittedAt
		}
		updated, err := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusSubmitted, now,
			&payoutrequest.StatusPatch{SubmittedAt: &submittedAt})
		if err != nil {
			return TickResult{Action: ActionNone}, err
		}
		return w.pollReceipt(updated, now, ActionSubmitted)
	}

	amount, err := model.NewBigAmount(claimed.Amount)
	if err != nil {
		return TickResult{Action: ActionNone}, err
	}

	txHash, err := w.chainRpc.SubmitPayout(chainrpc.SubmitPayoutInput{
		RequestID: claimed.RequestID,
		ToAddress: claimed.ToAddress,
		Amount:    amount,
	})
	if err != nil {
		// row never reached the wire; terminalize instead of retrying forever
		reason := err.Error()
		w.logger.Error("payout submission failed", map[string]string{
			"id":     claimed.ID,
			"worker": workerID,
			"error":  reason,
		})
		if _, uerr := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusRejected, now,
			&payoutrequest.StatusPatch{RiskReason: &reason}); uerr != nil {
			return TickResult{Action: ActionNone}, uerr
		}
		return TickResult{ClaimedID: claimed.ID, Action: ActionRejected}, nil
	}

	w.logger.Info("payout submitted", map[string]string{
		"id":     claimed.ID,
		"worker": workerID,
		"txHash": txHash,
	})
	submittedAt := now
	if _, err := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusSubmitted, now,
		&payoutrequest.StatusPatch{TxHash: &txHash, SubmittedAt: &submittedAt}); err != nil {
		return TickResult{Action: ActionNone}, err
	}
	return TickResult{ClaimedID: claimed.ID, Action: ActionSubmitted}, nil
}

// pollReceipt drives a SUBMITTED row. notMinedAction distinguishes a row
// that just transitioned this tick (submitted) from one merely polled (none).
func (w *Worker) pollReceipt(claimed *model.PayoutRequest, now time.Time, notMinedAction Action) (TickResult, error) {
	if claimed.TxHash == nil {
		// cannot poll without a hash; a SUBMITTED row without one is corrupt
		reason := "submitted row has no tx hash"
		if _, err := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusFailed, now,
			&payoutrequest.StatusPatch{FailedReason: &reason}); err != nil {
			return TickResult{Action: ActionNone}, err
		}
		return TickResult{ClaimedID: claimed.ID, Action: ActionFailed}, nil
	}

	receipt, err := w.chainRpc.GetReceipt(*claimed.TxHash)
	if err != nil {
		reason := err.Error()
		w.logger.Error("receipt lookup failed", map[string]string{
			"id":     claimed.ID,
			"txHash": *claimed.TxHash,
			"error":  reason,
		})
		if _, uerr := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusFailed, now,
			&payoutrequest.StatusPatch{FailedReason: &reason}); uerr != nil {
			return TickResult{Action: ActionNone}, uerr
		}
		return TickResult{ClaimedID: claimed.ID, Action: ActionFailed}, nil
	}

	if receipt == nil {
		return TickResult{ClaimedID: claimed.ID, Action: notMinedAction}, nil
	}

	if receipt.Reverted {
		reason := revertedReason
		if _, err := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusFailed, now,
			&payoutrequest.StatusPatch{FailedReason: &reason}); err != nil {
			return TickResult{Action: ActionNone}, err
		}
		return TickResult{ClaimedID: claimed.ID, Action: ActionFailed}, nil
	}

	if receipt.Confirmations >= w.confirmations {
		confirmedAt := now
		if _, err := w.store.PayoutRequest.UpdateStatus(w.db, claimed.ID, model.PayoutStatusConfirmed, now,
			&payoutrequest.StatusPatch{ConfirmedAt: &confirmedAt}); err != nil {
			return TickResult{Action: ActionNone}, err
		}
		return TickResult{ClaimedID: claimed.ID, Action: ActionConfirmed}, nil
	}

	// mined but not deep enough yet
	return TickResult{ClaimedID: claimed.ID, Action: notMinedAction}, nil
}

func utcDayStart(now time.Time) time.Time {
	utc := now.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
