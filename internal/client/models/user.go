package models

type User struct {
	ID       string
	Username string
	Name     string
	Email    string
}
