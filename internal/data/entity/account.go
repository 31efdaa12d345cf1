package entity

type AccountRole string

const (
	RoleUser  AccountRole = "USER"
	RoleAdmin AccountRole = "ADMIN"
)

type Account struct {
	Base
	Email        string      `db:"email"`
	PasswordHash string      `db:"password"`
	Role         AccountRole `db:"role"`
}
