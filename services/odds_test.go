package services

import (
	"testing"
)

func TestComposeOdds(t *testing.T) {
	tests := []struct {
		name       string
		base       int64
		source     string
		discount   int64
		wantMult   int64
		wantSource string
	}{
		{
			name:       "global default untouched",
			base:       190,
			source:     OddsGlobalDefault,
			discount:   0,
			wantMult:   190,
			wantSource: OddsGlobalDefault,
		},
		{
			name:       "subadmin override untouched",
			base:       210,
			source:     OddsSubadminOverride,
			discount:   0,
			wantMult:   210,
			wantSource: OddsSubadminOverride,
		},
		{
			name:       "ten percent discount on override",
			base:       210,
			source:     OddsSubadminOverride,
			discount:   1000,
			wantMult:   231,
			wantSource: OddsSubadminOverride + "+discount",
		},
		{
			name:       "discount floors",
			base:       195,
			source:     OddsGlobalDefault,
			discount:   333, // 195 * 1.0333 = 201.49...
			wantMult:   201,
			wantSource: OddsGlobalDefault + "+discount",
		},
		{
			name:       "full discount doubles",
			base:       150,
			source:     OddsGlobalDefault,
			discount:   10000,
			wantMult:   300,
			wantSource: OddsGlobalDefault + "+discount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composeOdds(tt.base, tt.source, tt.discount)
			if got.Multiplier != tt.wantMult {
				t.Errorf("composeOdds(%d, %d).Multiplier = %d, want %d", tt.base, tt.discount, got.Multiplier, tt.wantMult)
			}
			if got.Source != tt.wantSource {
				t.Errorf("composeOdds(%d, %d).Source = %q, want %q", tt.base, tt.discount, got.Source, tt.wantSource)
			}
			if got.BaseOdds != tt.base || got.DiscountRate != tt.discount {
				t.Errorf("composeOdds audit fields = (%d, %d), want (%d, %d)", got.BaseOdds, got.DiscountRate, tt.base, tt.discount)
			}
		})
	}
}
