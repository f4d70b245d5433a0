package user

import "time"

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleWorker Role = "WORKER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleWorker
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CompanyID    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
