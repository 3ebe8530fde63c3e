package chainrpc

import (
	"github.com/vaultpay/payout-backend/internal/model"
)

type SubmitPayoutInput struct {
	RequestID string
	ToAddress string
	Amount    *model.BigAmount
}

type TxReceipt struct {
	TxHash        string
	Confirmations int64
	Reverted      bool
}

// IChainRPC is the worker's view of the settlement chain. SubmitPayout is
// safe to call at most once per requestId; the on-chain vault rejects a
// reused requestId rather than paying twice. GetReceipt is side-effect-free
// and returns (nil, nil) while the transaction is not yet mined — an RPC
// error is never coerced into "not mined".
type IChainRPC interface {
	SubmitPayout(input SubmitPayoutInput) (string, error)
	GetReceipt(txHash string) (*TxReceipt, error)
}
