// Package models defines the server-side persistence entities.
package models

import "time"

type User struct {
	ID        string
	Username  string
	Name      string
	Email     string
	Salt      []byte
	Verifier  []byte
	Roles     []string
	CreatedAt time.Time
}
