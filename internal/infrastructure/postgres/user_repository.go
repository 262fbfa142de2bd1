package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/entity"
	"github.com/censudex/clients-service/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, full_name, email, username, password_hash, status, birth_date, address, phone_number, role, created_at, deleted_at`

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste una cuenta nueva. El índice único sobre lower(email)
// convierte inserciones concurrentes duplicadas en ErrEmailAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, full_name, email, username, password_hash, status, birth_date, address, phone_number, role, created_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.Username, user.PasswordHash, user.Status,
		user.BirthDate, user.Address, user.PhoneNumber, user.Role, user.CreatedAt, user.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID, incluidas las soft-deleted.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por correo (case-insensitive).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
}

// GetByUsername obtiene una cuenta por nombre de usuario (case-insensitive).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.queryOne(ctx, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1) LIMIT 1`, username)
}

// EmailExists indica si algún registro (activo o borrado) usa el correo.
func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($1))`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("email exists: %w", err)
	}
	return exists, nil
}

// Update actualiza una cuenta existente.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, username = $4, password_hash = $5, status = $6,
		    birth_date = $7, address = $8, phone_number = $9, deleted_at = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.FullName, user.Email, user.Username, user.PasswordHash, user.Status,
		user.BirthDate, user.Address, user.PhoneNumber, user.DeletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List devuelve las cuentas que cumplen todos los filtros (AND). Los filtros
// de texto usan ILIKE; el orden es el nativo del almacenamiento.
func (r *UserRepo) List(ctx context.Context, filters repository.ListFilters) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	args := []any{}
	if filters.Name != "" {
		args = append(args, "%"+filters.Name+"%")
		query += fmt.Sprintf(" AND full_name ILIKE $%d", len(args))
	}
	if filters.Email != "" {
		args = append(args, "%"+filters.Email+"%")
		query += fmt.Sprintf(" AND email ILIKE $%d", len(args))
	}
	if filters.Username != "" {
		args = append(args, "%"+filters.Username+"%")
		query += fmt.Sprintf(" AND username ILIKE $%d", len(args))
	}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UserRepo) queryOne(ctx context.Context, query string, args ...any) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, query, args...)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.Username, &u.PasswordHash, &u.Status,
		&u.BirthDate, &u.Address, &u.PhoneNumber, &u.Role, &u.CreatedAt, &u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
