package store

import "time"

// Run is one recorded generation: which definition was used and what it
// produced.
type Run struct {
	ID         string    `json:"id"`
	ConfigHash string    `json:"config_hash"`
	ConfigYAML string    `json:"config_yaml"`
	CSS        string    `json:"css"`
	CreatedAt  time.Time `json:"created_at"`
}
