package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpay/payout-backend/internal/model"
	"github.com/vaultpay/payout-backend/internal/utils/config"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	checker, err := New(config.RiskConfig{
		MaxPerRequest: "1000",
		MaxDailyTotal: "5000",
		Denylist:      []string{"0xBAD0000000000000000000000000000000000bad"},
	})
	require.NoError(t, err)
	return checker
}

func request(to, amount string) *model.PayoutRequest {
	return &model.PayoutRequest{
		ID:        "req-1",
		ToAddress: to,
		Amount:    amount,
		Status:    model.PayoutStatusApproved,
	}
}

func TestCheck_Pass(t *testing.T) {
	checker := newTestChecker(t)

	result := checker.Check(request("0x1111111111111111111111111111111111111111", "1000"), model.ZeroAmount())
	assert.True(t, result.OK)
	assert.Empty(t, result.Reason)
}

func TestCheck_MaxPerRequest(t *testing.T) {
	checker := newTestChecker(t)

	result := checker.Check(request("0x1111111111111111111111111111111111111111", "1001"), model.ZeroAmount())
	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "max per request")
}

func TestCheck_Denylist_CaseInsensitive(t *testing.T) {
	checker := newTestChecker(t)

	for _, to := range []string{
		"0xBAD0000000000000000000000000000000000bad",
		"0xbad0000000000000000000000000000000000bad",
		"0xBAD0000000000000000000000000000000000BAD",
	} {
		result := checker.Check(request(to, "1"), model.ZeroAmount())
		assert.False(t, result.OK, to)
		assert.Contains(t, result.Reason, "denylisted")
	}
}

func TestCheck_MaxDailyTotal(t *testing.T) {
	checker := newTestChecker(t)
	spent, _ := model.NewBigAmount("4999")

	result := checker.Check(request("0x1111111111111111111111111111111111111111", "1"), spent)
	assert.True(t, result.OK)

	result = checker.Check(request("0x1111111111111111111111111111111111111111", "2"), spent)
	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "max daily total")
}

// the per-request cap fires before the daily cap when both would fail
func TestCheck_Order(t *testing.T) {
	checker := newTestChecker(t)
	spent, _ := model.NewBigAmount("5000")

	result := checker.Check(request("0xBAD0000000000000000000000000000000000bad", "2000"), spent)
	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "max per request")

	result = checker.Check(request("0xBAD0000000000000000000000000000000000bad", "1"), spent)
	assert.False(t, result.OK)
	assert.Contains(t, result.Reason, "denylisted")
}

func TestCheck_Deterministic(t *testing.T) {
	checker := newTestChecker(t)
	req := request("0x1111111111111111111111111111111111111111", "2000")

	first := checker.Check(req, model.ZeroAmount())
	for i := 0; i < 10; i++ {
		again := checker.Check(req, model.ZeroAmount())
		assert.Equal(t, first, again)
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(config.RiskConfig{MaxPerRequest: "abc", MaxDailyTotal: "1"})
	assert.Error(t, err)

	_, err = New(config.RiskConfig{MaxPerRequest: "1", MaxDailyTotal: ""})
	assert.Error(t, err)
}
