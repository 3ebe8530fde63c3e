package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBigAmount(t *testing.T) {
	amt, err := NewBigAmount("1000000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", amt.Value)

	_, err = NewBigAmount("1.5")
	assert.Error(t, err)

	_, err = NewBigAmount("abc")
	assert.Error(t, err)

	neg, err := NewBigAmount("-5")
	require.NoError(t, err)
	assert.False(t, neg.IsPositive())
}

func TestBigAmountAdd(t *testing.T) {
	a, _ := NewBigAmount("999999999999999999999999")
	b, _ := NewBigAmount("1")

	sum := a.Add(b)
	assert.Equal(t, "1000000000000000000000000", sum.Value)

	// operands untouched
	assert.Equal(t, "999999999999999999999999", a.Value)
}

func TestBigAmountSub(t *testing.T) {
	a, _ := NewBigAmount("300")
	b, _ := NewBigAmount("100")

	assert.Equal(t, "200", a.Sub(b).Value)
	assert.Equal(t, "-200", b.Sub(a).Value)
}

func TestBigAmountCmp(t *testing.T) {
	small, _ := NewBigAmount("100")
	large, _ := NewBigAmount("200")

	assert.True(t, large.GreaterThan(small))
	assert.False(t, small.GreaterThan(large))
	assert.False(t, small.GreaterThan(small))
	assert.Equal(t, 0, small.Cmp(small))
	assert.Equal(t, 0, ZeroAmount().Cmp(ZeroAmount()))
}
