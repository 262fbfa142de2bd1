package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/entity"
	"github.com/censudex/clients-service/internal/domain/repository"
)

// UserUseCase aplica las reglas de negocio del ciclo de vida de cuentas:
// registro, consulta, edición, soft delete y verificación de credenciales.
type UserUseCase struct {
	repo   repository.UserRepository
	hasher PasswordHasher
	now    func() time.Time
}

// NewUserUseCase construye el caso de uso con sus dependencias explícitas.
func NewUserUseCase(repo repository.UserRepository, hasher PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, hasher: hasher, now: time.Now}
}

// Register crea una cuenta de autorregistro. Siempre recibe el rol Client.
func (uc *UserUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	return uc.create(ctx, in, entity.RoleClient)
}

// CreateWithRole crea una cuenta con un rol explícito. Lo usa la siembra
// inicial para el administrador fijo; el autorregistro nunca pasa por aquí.
func (uc *UserUseCase) CreateWithRole(ctx context.Context, in dto.RegisterRequest, role string) (*dto.UserResponse, error) {
	return uc.create(ctx, in, role)
}

// create valida en orden (la primera regla que falla gana) y persiste.
func (uc *UserUseCase) create(ctx context.Context, in dto.RegisterRequest, role string) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateEmailDomain(in.Email); err != nil {
		return nil, err
	}
	exists, err := uc.repo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyExists
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	if err := validateAge(birth, uc.now().UTC()); err != nil {
		return nil, err
	}
	if err := validatePhone(in.PhoneNumber); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		FullName:     in.Names + " " + in.LastNames,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Status:       true,
		BirthDate:    birth,
		Address:      in.Address,
		PhoneNumber:  in.PhoneNumber,
		Role:         role,
		CreatedAt:    uc.now().UTC(),
	}
	// El índice único de la base respalda la verificación previa de email:
	// dos registros concurrentes con el mismo correo no pueden insertarse ambos.
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene una cuenta por ID. Las cuentas soft-deleted siguen visibles.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve las cuentas que cumplen todos los filtros indicados.
// Los filtros de texto son substring case-insensitive; el de estado es exacto.
func (uc *UserUseCase) List(ctx context.Context, in dto.ListRequest) ([]*dto.UserResponse, error) {
	filters := repository.ListFilters{
		Name:     in.NameFilter,
		Email:    in.EmailFilter,
		Username: in.UsernameFilter,
	}
	if in.StatusFilter != "" {
		status, err := strconv.ParseBool(in.StatusFilter)
		if err != nil {
			return nil, domain.ErrInvalidStatusFilter
		}
		filters.Status = &status
	}
	users, err := uc.repo.List(ctx, filters)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update edita una cuenta existente. Un fallo en el cambio de contraseña
// aborta antes de aplicar el resto de los campos.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.EditUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateEmailDomain(in.Email); err != nil {
		return nil, err
	}
	if !strings.EqualFold(in.Email, user.Email) {
		exists, err := uc.repo.EmailExists(ctx, in.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	birth, err := parseBirthDate(in.BirthDate)
	if err != nil {
		return nil, err
	}
	if err := validateAge(birth, uc.now().UTC()); err != nil {
		return nil, err
	}
	if err := validatePhone(in.PhoneNumber); err != nil {
		return nil, err
	}
	if in.Password != "" {
		if err := uc.resetPassword(user, in.Password); err != nil {
			return nil, err
		}
	}
	user.FullName = in.Names + " " + in.LastNames
	user.Email = in.Email
	user.Username = in.Username
	user.BirthDate = birth
	user.Address = in.Address
	user.PhoneNumber = in.PhoneNumber
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// resetPassword reemplaza el digest de la cuenta por el de la nueva
// contraseña, validando antes la política de complejidad.
func (uc *UserUseCase) resetPassword(user *entity.User, newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := uc.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return nil
}

// SoftDelete marca la cuenta como inactiva y estampa la fecha de borrado.
// No hay guardia de idempotencia: repetir la operación vuelve a estampar
// DeletedAt sin error, y no existe camino de reactivación.
func (uc *UserUseCase) SoftDelete(ctx context.Context, id string) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Status = false
	deletedAt := uc.now().UTC()
	user.DeletedAt = &deletedAt
	return uc.repo.Update(ctx, user)
}

// VerifyCredentials resuelve la cuenta por nombre de usuario y, si no existe,
// por correo electrónico; luego verifica la contraseña contra el digest.
func (uc *UserUseCase) VerifyCredentials(ctx context.Context, in dto.VerifyCredentialsRequest) (*dto.VerifyCredentialsResponse, error) {
	user, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.repo.GetByEmail(ctx, in.Username)
		if err != nil {
			return nil, err
		}
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return &dto.VerifyCredentialsResponse{ID: user.ID, Roles: []string{user.Role}}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Username:    u.Username,
		Status:      u.Status,
		BirthDate:   u.BirthDate.Format(birthDateLayout),
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
	if u.DeletedAt != nil {
		out.DeletedAt = u.DeletedAt.Format(time.RFC3339)
	}
	return out
}
