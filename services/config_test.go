package services

import (
	"testing"

	"matkabook/models"
)

func TestValidMultiplier(t *testing.T) {
	tests := []struct {
		name string
		mult int64
		want bool
	}{
		{name: "lower bound", mult: 100, want: true},
		{name: "typical coin flip", mult: 195, want: true},
		{name: "upper bound", mult: 2000, want: true},
		{name: "below even money", mult: 99, want: false},
		{name: "above cap", mult: 2001, want: false},
		{name: "negative", mult: -195, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validMultiplier(tt.mult); got != tt.want {
				t.Errorf("validMultiplier(%d) = %v, want %v", tt.mult, got, tt.want)
			}
		})
	}
}

func TestValidRate(t *testing.T) {
	tests := []struct {
		name string
		rate int64
		want bool
	}{
		{name: "zero", rate: 0, want: true},
		{name: "five percent", rate: 500, want: true},
		{name: "hundred percent", rate: 10000, want: true},
		{name: "over hundred percent", rate: 10001, want: false},
		{name: "negative", rate: -1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validRate(tt.rate); got != tt.want {
				t.Errorf("validRate(%d) = %v, want %v", tt.rate, got, tt.want)
			}
		})
	}
}

func TestValidGameType(t *testing.T) {
	for _, gt := range []string{
		models.GameCoinFlip, models.GameSatamatkaJodi, models.GameSatamatkaHarf,
		models.GameSatamatkaCross, models.GameSatamatkaOddEven,
		models.GameCricketToss, models.GameTeamMatch,
	} {
		if !validGameType(gt) {
			t.Errorf("validGameType(%q) = false, want true", gt)
		}
	}
	if validGameType("roulette") {
		t.Error("validGameType(roulette) = true, want false")
	}
}
