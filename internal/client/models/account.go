// Package models defines the client-side view of the tracker's entities:
// cached accounts, users, projects, tasks, comments, activities and
// notifications, plus small pure helpers over them.
package models

// Account is a locally cached identity-provider account. The refresh token
// is what makes silent re-authentication possible across restarts; Active
// marks the account the next silent attempt will use.
type Account struct {
	Username     string
	RefreshToken string
	Active       bool
}
