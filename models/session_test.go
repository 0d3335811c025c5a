package models

import (
	"strings"
	"testing"
	"time"
)

func TestSessionBeforeCreate(t *testing.T) {
	s := &Session{UserID: 7}
	if err := s.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate() error = %v", err)
	}

	if len(s.SID) != 36 {
		t.Errorf("SID length = %d, want 36", len(s.SID))
	}
	if s.SID != strings.ToLower(s.SID) {
		t.Errorf("SID %q is not lowercase", s.SID)
	}

	if s.ExpiresAt.IsZero() {
		t.Fatal("ExpiresAt not defaulted")
	}
	want := time.Now().Add(SessionTTL)
	if diff := want.Sub(s.ExpiresAt); diff < -time.Minute || diff > time.Minute {
		t.Errorf("ExpiresAt = %v, want about %v", s.ExpiresAt, want)
	}
}

func TestSessionBeforeCreateKeepsExplicitExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	s := &Session{UserID: 7, ExpiresAt: exp}
	if err := s.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate() error = %v", err)
	}
	if !s.ExpiresAt.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want explicit %v", s.ExpiresAt, exp)
	}
}
