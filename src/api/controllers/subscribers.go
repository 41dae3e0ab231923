package controllers

import (
	"context"
	"strings"
	"sync"

	"fingenius/src/schemas"
	"fingenius/src/utils"
)

// SubscriberList keeps newsletter sign-ups in memory, deduplicated
// case-insensitively.
type SubscriberList struct {
	mu     sync.RWMutex
	emails map[string]struct{}
}

func NewSubscriberList() *SubscriberList {
	return &SubscriberList{emails: make(map[string]struct{})}
}

// Add reports whether email was new.
func (s *SubscriberList) Add(email string) bool {
	key := strings.ToLower(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.emails[key]; ok {
		return false
	}
	s.emails[key] = struct{}{}
	return true
}

func (s *SubscriberList) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.emails)
}

func (c *Controller) Subscribe(ctx context.Context, req *schemas.SubscribeRequest) (*schemas.SubscribeResponse, error) {
	email := strings.TrimSpace(req.Email)
	if !utils.IsValidEmail(email) {
		return nil, utils.UnprocessableEntity("invalid email address")
	}
	c.Subscribers.Add(email)
	return &schemas.SubscribeResponse{Email: email, Subscribed: true}, nil
}
