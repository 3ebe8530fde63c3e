package chainrpc

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
)

// FakeChainRPC is an in-memory chain used in development mode and tests.
// Transaction hashes derive deterministically from the requestId, and the
// replay guard behaves like the on-chain vault: a reused requestId errors
// instead of paying again.
type FakeChainRPC struct {
	mu sync.Mutex

	receipts    map[string]*TxReceipt
	submitted   map[string]string // requestId -> txHash
	submitCalls map[string]int

	submitErr  error
	receiptErr error
}

func NewFake() *FakeChainRPC {
	return &FakeChainRPC{
		receipts:    make(map[string]*TxReceipt),
		submitted:   make(map[string]string),
		submitCalls: make(map[string]int),
	}
}

func (f *FakeChainRPC) SubmitPayout(input SubmitPayoutInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitCalls[input.RequestID]++

	if f.submitErr != nil {
		return "", f.submitErr
	}

	if _, used := f.submitted[input.RequestID]; used {
		return "", errors.Errorf("execution reverted: request id %s already used", input.RequestID)
	}

	txHash := fakeTxHash(input.RequestID)
	f.submitted[input.RequestID] = txHash
	f.receipts[txHash] = &TxReceipt{
		TxHash:        txHash,
		Confirmations: 0,
		Reverted:      false,
	}

	return txHash, nil
}

func (f *FakeChainRPC) GetReceipt(txHash string) (*TxReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.receiptErr != nil {
		return nil, f.receiptErr
	}

	receipt, ok := f.receipts[txHash]
	if !ok {
		return nil, nil
	}

	copied := *receipt
	return &copied, nil
}

// SetConfirmations sets the confirmation depth for a hash, creating the
// receipt if submission never went through this fake.
func (f *FakeChainRPC) SetConfirmations(txHash string, confirmations int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	receipt, ok := f.receipts[txHash]
	if !ok {
		receipt = &TxReceipt{TxHash: txHash}
		f.receipts[txHash] = receipt
	}
	receipt.Confirmations = confirmations
}

func (f *FakeChainRPC) MarkReverted(txHash string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	receipt, ok := f.receipts[txHash]
	if !ok {
		receipt = &TxReceipt{TxHash: txHash}
		f.receipts[txHash] = receipt
	}
	receipt.Reverted = true
}

func (f *FakeChainRPC) FailSubmitWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitErr = err
}

func (f *FakeChainRPC) FailReceiptWith(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.receiptErr = err
}

func (f *FakeChainRPC) SubmitCalls(requestID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitCalls[requestID]
}

func fakeTxHash(requestID string) string {
	padded := requestID
	for len(padded) < 16 {
		padded += "0"
	}
	return fmt.Sprintf("0x%s", padded[:16])
}
