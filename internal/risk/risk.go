package risk

import (
	"fmt"
	"strings"

	"github.com/vaultpay/payout-backend/internal/model"
	"github.com/vaultpay/payout-backend/internal/utils/config"
)

type Checker struct {
	maxPerRequest *model.BigAmount
	maxDailyTotal *model.BigAmount
	denylist      map[string]struct{}
}

// New builds a checker from the immutable risk section of the app config.
// The denylist is normalized to lowercase once here so lookups stay
// case-insensitive without re-normalizing per check.
func New(cfg config.RiskConfig) (*Checker, error) {
	maxPerRequest, err := model.NewBigAmount(cfg.MaxPerRequest)
	if err != nil {
		return nil, err
	}

	maxDailyTotal, err := model.NewBigAmount(cfg.MaxDailyTotal)
	if err != nil {
		return nil, err
	}

	denylist := make(map[string]struct{}, len(cfg.Denylist))
	for _, addr := range cfg.Denylist {
		denylist[strings.ToLower(addr)] = struct{}{}
	}

	return &Checker{
		maxPerRequest: maxPerRequest,
		maxDailyTotal: maxDailyTotal,
		denylist:      denylist,
	}, nil
}

// Check runs the policy checks in a fixed order: per-request cap, denylist,
// daily cap. The first failing check decides the reason.
func (c *Checker) Check(request *model.PayoutRequest, dailyTotal *model.BigAmount) CheckResult {
	amount, err := model.NewBigAmount(request.Amount)
	if err != nil {
		return CheckResult{OK: false, Reason: fmt.Sprintf("amount %s is not a valid integer", request.Amount)}
	}

	if amount.GreaterThan(c.maxPerRequest) {
		return CheckResult{
			OK:     false,
			Reason: fmt.Sprintf("amount %s exceeds max per request %s", amount, c.maxPerRequest),
		}
	}

	if _, denied := c.denylist[strings.ToLower(request.ToAddress)]; denied {
		return CheckResult{
			OK:     false,
			Reason: fmt.Sprintf("address %s is denylisted", request.ToAddress),
		}
	}

	if dailyTotal.Add(amount).GreaterThan(c.maxDailyTotal) {
		return CheckResult{
			OK:     false,
			Reason: fmt.Sprintf("daily total %s exceeds max daily total %s", dailyTotal.Add(amount), c.maxDailyTotal),
		}
	}

	return CheckResult{OK: true}
}
