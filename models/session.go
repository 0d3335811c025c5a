package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionTTL bounds how long a login token stays valid.
const SessionTTL = 24 * time.Hour

type Session struct {
	gorm.Model
	SID       string    `gorm:"size:36;uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ExpiresAt time.Time `gorm:"index"`
}

// BeforeCreate issues the token and applies the default TTL when the caller
// did not set an explicit expiry.
func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	s.SID = strings.ToLower(uuid.New().String())
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().Add(SessionTTL)
	}
	return nil
}
