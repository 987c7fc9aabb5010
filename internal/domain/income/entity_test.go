package income

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCommissionRule_CommissionAmount(t *testing.T) {
	tests := []struct {
		name  string
		rule  CommissionRule
		total string
		want  string
	}{
		{
			"percentage plus base plus bonus",
			CommissionRule{
				Percentage:  decimal.RequireFromString("10"),
				BaseAmount:  decimal.RequireFromString("100"),
				BonusAmount: decimal.RequireFromString("50"),
			},
			"1000",
			"250",
		},
		{
			"zero percentage keeps fixed parts",
			CommissionRule{
				Percentage:  decimal.Zero,
				BaseAmount:  decimal.RequireFromString("300"),
				BonusAmount: decimal.Zero,
			},
			"1000000",
			"300",
		},
		{
			"fractional percentage rounds to cents",
			CommissionRule{
				Percentage:  decimal.RequireFromString("33.33"),
				BaseAmount:  decimal.Zero,
				BonusAmount: decimal.Zero,
			},
			"100",
			"33.33",
		},
		{
			"repeating fraction rounds half up",
			CommissionRule{
				Percentage:  decimal.RequireFromString("1"),
				BaseAmount:  decimal.Zero,
				BonusAmount: decimal.Zero,
			},
			"100.555",
			"1.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rule.CommissionAmount(decimal.RequireFromString(tt.total))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}
