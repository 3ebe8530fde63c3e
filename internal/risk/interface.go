package risk

import (
	"github.com/vaultpay/payout-backend/internal/model"
)

type CheckResult struct {
	OK     bool
	Reason string
}

// IChecker gates a payout request before submission. Implementations must be
// stateless and deterministic: same (request, dailyTotal) in, same verdict out.
type IChecker interface {
	Check(request *model.PayoutRequest, dailyTotal *model.BigAmount) CheckResult
}
