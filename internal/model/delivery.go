// Package model defines the core quotebot data types.
package model

import "time"

// Mode is a delivery mode name as stored in the test_mode config key.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeBurst   Mode = "burst"
	ModeFlood   Mode = "flood"
	ModePattern Mode = "pattern"
	ModeMixed   Mode = "mixed"
)

// Modes lists the delivery modes in menu order.
var Modes = []Mode{ModeNormal, ModeBurst, ModeFlood, ModePattern, ModeMixed}

// ValidModes are the allowed test_mode values.
var ValidModes = map[Mode]bool{
	ModeNormal:  true,
	ModeBurst:   true,
	ModeFlood:   true,
	ModePattern: true,
	ModeMixed:   true,
}

// Delivery represents one attempted message delivery.
type Delivery struct {
	ID      string    `json:"id"`
	RunID   string    `json:"run_id"`
	Mode    Mode      `json:"mode"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	OK      bool      `json:"ok"`
	Reason  string    `json:"reason,omitempty"`
	Error   string    `json:"error,omitempty"`
	SentAt  time.Time `json:"sent_at"`
}
