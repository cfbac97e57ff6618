package entity

import "time"

// Papéis de usuário do back office.
const (
	RoleAdmin        = "ADMIN"
	RoleManager      = "MANAGER"
	RoleReceptionist = "RECEPTIONIST"
)

// User usuário do sistema. Password guarda o hash bcrypt; nunca sai em respostas.
type User struct {
	ID        string
	Name      string
	Email     string // único
	Password  string
	Role      string
	Phone     string
	Active    bool
	CreatedAt time.Time
}
