package domain

import "time"

// AuthEventType enumerates recorded authentication outcomes.
type AuthEventType string

const (
	AuthEventLogin         AuthEventType = "login"
	AuthEventLoginFailed   AuthEventType = "login_failed"
	AuthEventRegister      AuthEventType = "register"
	AuthEventLoginThrottle AuthEventType = "login_throttled"
)

// AuthEvent is an audit record of a single authentication attempt.
type AuthEvent struct {
	Type      AuthEventType `json:"type"`
	Subject   string        `json:"subject"`
	Reason    string        `json:"reason,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}
