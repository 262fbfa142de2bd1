package repository

import (
	"context"

	"github.com/censudex/clients-service/internal/domain/entity"
)

// ListFilters filtros opcionales para el listado de usuarios.
// Los campos string son coincidencia parcial case-insensitive; Status es exacto.
type ListFilters struct {
	Name     string
	Email    string
	Username string
	Status   *bool
}

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos GetBy* devuelven (nil, nil) cuando no hay filas.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, filters ListFilters) ([]*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}
