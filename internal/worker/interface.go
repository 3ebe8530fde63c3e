package worker

import (
	"time"
)

type Action string

const (
	ActionNone      Action = "none"
	ActionRejected  Action = "rejected"
	ActionSubmitted Action = "submitted"
	ActionConfirmed Action = "confirmed"
	ActionFailed    Action = "failed"
)

// TickResult reports what a single tick did. ClaimedID is empty when no row
// was claimable.
type TickResult struct {
	ClaimedID string `json:"claimed_id"`
	Action    Action `json:"action"`
}

type IWorker interface {
	Tick(workerID string, now time.Time, lease time.Duration) (TickResult, error)
}
