package money

import (
	"testing"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{
			name: "whole rupees",
			in:   "100",
			want: 10000,
		},
		{
			name: "two decimal places",
			in:   "19.50",
			want: 1950,
		},
		{
			name: "single decimal place",
			in:   "0.5",
			want: 50,
		},
		{
			name: "zero",
			in:   "0",
			want: 0,
		},
		{
			name:    "sub-paisa precision rejected",
			in:      "10.005",
			wantErr: true,
		},
		{
			name:    "garbage rejected",
			in:      "ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromString(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FromString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got.Paisa() != tt.want {
				t.Errorf("FromString(%q) = %d paisa, want %d", tt.in, got.Paisa(), tt.want)
			}
		})
	}
}

func TestApplyMultiplier(t *testing.T) {
	tests := []struct {
		name  string
		stake int64
		mult  int64
		want  int64
	}{
		{
			name:  "1.95x on 1000",
			stake: 1000,
			mult:  195,
			want:  1950,
		},
		{
			name:  "1.95x on 2000",
			stake: 2000,
			mult:  195,
			want:  3900,
		},
		{
			name:  "floors fractional paisa",
			stake: 333,
			mult:  195,
			want:  649, // 333*195/100 = 649.35
		},
		{
			name:  "9.5x jodi payout",
			stake: 10000,
			mult:  950,
			want:  95000,
		},
		{
			name:  "even money",
			stake: 500,
			mult:  100,
			want:  500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPaisa(tt.stake).ApplyMultiplier(tt.mult)
			if got.Paisa() != tt.want {
				t.Errorf("ApplyMultiplier(%d, %d) = %d, want %d", tt.stake, tt.mult, got.Paisa(), tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		base int64
		rate int64
		want int64
	}{
		{
			name: "5 percent of 5000",
			base: 5000,
			rate: 500,
			want: 250,
		},
		{
			name: "floors remainder",
			base: 999,
			rate: 500,
			want: 49, // 999*500/10000 = 49.95
		},
		{
			name: "zero rate",
			base: 5000,
			rate: 0,
			want: 0,
		},
		{
			name: "full hundred percent",
			base: 1234,
			rate: 10000,
			want: 1234,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPaisa(tt.base).Percent(tt.rate)
			if got.Paisa() != tt.want {
				t.Errorf("Percent(%d, %d) = %d, want %d", tt.base, tt.rate, got.Paisa(), tt.want)
			}
		})
	}
}

func TestFormatting(t *testing.T) {
	if s := FromPaisa(1950).String(); s != "19.50" {
		t.Errorf("String() = %q, want %q", s, "19.50")
	}
	if s := FromPaisa(0).String(); s != "0.00" {
		t.Errorf("String() = %q, want %q", s, "0.00")
	}
	if s := FromPaisa(-250).String(); s != "-2.50" {
		t.Errorf("String() = %q, want %q", s, "-2.50")
	}
}

func TestArithmeticExactness(t *testing.T) {
	a := FromPaisa(10000)
	b := a.Sub(FromPaisa(2000))
	if b.Paisa() != 8000 {
		t.Fatalf("Sub = %d, want 8000", b.Paisa())
	}
	c := b.Add(FromPaisa(3900))
	if c.Paisa() != 11900 {
		t.Fatalf("Add = %d, want 11900", c.Paisa())
	}
}
