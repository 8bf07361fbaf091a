package models

const (
	ClientRole = "client"
	AdminRole  = "admin"
)

type User struct {
	ID       int64
	Username string
	Password string
	Email    string
	Roles    []string
}
