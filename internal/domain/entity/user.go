package entity

import "time"

// Roles válidos para User. El rol se asigna una única vez al crear la cuenta.
const (
	RoleAdmin  = "Admin"
	RoleClient = "Client"
)

// User representa una cuenta de cliente o administrador de Censudex.
type User struct {
	ID           string
	FullName     string // nombres + apellidos concatenados
	Email        string // único (case-insensitive), debe terminar en @censudex.cl
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Status       bool   // true = activa; false tras soft delete (transición irreversible)
	BirthDate    time.Time
	Address      string
	PhoneNumber  string // formato +569XXXXXXXX
	Role         string // Admin o Client
	CreatedAt    time.Time
	DeletedAt    *time.Time // nil mientras la cuenta esté activa
}
