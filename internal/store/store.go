package store

import (
	"github.com/vaultpay/payout-backend/internal/store/payoutrequest"
)

type Store struct {
	PayoutRequest payoutrequest.IStore
}

func New() *Store {
	return &Store{
		PayoutRequest: payoutrequest.New(),
	}
}
