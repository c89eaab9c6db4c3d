package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	total := ComputeTotal(decimal.NewFromInt(100), decimal.NewFromInt(18))
	assert.True(t, total.Equal(decimal.NewFromInt(118)), "got %s", total)
}

func TestComputeTotalZeroVat(t *testing.T) {
	total := ComputeTotal(decimal.NewFromInt(250), decimal.Zero)
	assert.True(t, total.Equal(decimal.NewFromInt(250)), "got %s", total)
}

func TestComputeTotalFractionalVat(t *testing.T) {
	// 199.99 + 199.99 * 12.5 / 100 = 224.988750
	total := ComputeTotal(decimal.RequireFromString("199.99"), decimal.RequireFromString("12.5"))
	assert.True(t, total.Equal(decimal.RequireFromString("224.98875")), "got %s", total)
}
