package entity

import "time"

// Grupos válidos para User.
const (
	GroupAdmin = "admin"
	GroupRoot  = "root"
)

// ValidGroup informa se o valor pertence ao enum de grupos.
func ValidGroup(group string) bool {
	return group == GroupAdmin || group == GroupRoot
}

// User representa um usuário do sistema (personal trainer / administrador).
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	Cref         string
	Group        string // admin, root
	Active       bool
	Document     *string // nil quando não informado ("" é normalizado para nil)
	Bio          string
	Cellphone    string
	Cep          string
	Address      string
	N            int
	Complement   string
	Neighborhood string
	City         string
	Uf           string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
