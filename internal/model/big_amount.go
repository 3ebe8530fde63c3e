package model

import (
	"math/big"

	"github.com/pkg/errors"
)

var ErrInvalidAmount = errors.New("amount is not a base-10 integer string")

// BigAmount is an arbitrary-precision amount in the asset's base units,
// carried as a decimal string end to end. Floats never touch it.
type BigAmount struct {
	Value string `json:"value"`
}

func NewBigAmount(value string) (*BigAmount, error) {
	if _, ok := new(big.Int).SetString(value, 10); !ok {
		return nil, errors.Wrap(ErrInvalidAmount, value)
	}

	return &BigAmount{Value: value}, nil
}

func ZeroAmount() *BigAmount {
	return &BigAmount{Value: "0"}
}

func (a *BigAmount) bigInt() *big.Int {
	num, ok := new(big.Int).SetString(a.Value, 10)
	if !ok {
		return new(big.Int)
	}
	return num
}

func (a *BigAmount) Add(other *BigAmount) *BigAmount {
	result := new(big.Int).Add(a.bigInt(), other.bigInt())
	return &BigAmount{Value: result.String()}
}

func (a *BigAmount) Sub(other *BigAmount) *BigAmount {
	result := new(big.Int).Sub(a.bigInt(), other.bigInt())
	return &BigAmount{Value: result.String()}
}

func (a *BigAmount) Cmp(other *BigAmount) int {
	return a.bigInt().Cmp(other.bigInt())
}

func (a *BigAmount) GreaterThan(other *BigAmount) bool {
	return a.Cmp(other) > 0
}

func (a *BigAmount) IsPositive() bool {
	return a.bigInt().Sign() > 0
}

func (a *BigAmount) String() string {
	return a.bigInt().String()
}
