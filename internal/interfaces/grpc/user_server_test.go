package grpc_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/censudex/clients-service/genproto/userpb"
	"github.com/censudex/clients-service/internal/application/usecase"
	"github.com/censudex/clients-service/internal/domain/entity"
	"github.com/censudex/clients-service/internal/domain/message"
	"github.com/censudex/clients-service/internal/domain/repository"
	grpcserver "github.com/censudex/clients-service/internal/interfaces/grpc"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type memRepo struct {
	users map[string]*entity.User
}

func newMemRepo() *memRepo { return &memRepo{users: make(map[string]*entity.User)} }

func (r *memRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memRepo) Update(_ context.Context, u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memRepo) List(_ context.Context, _ repository.ListFilters) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memRepo) EmailExists(_ context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(context.Background(), email)
	return u != nil, nil
}

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(p, d string) bool       { return d == "h:"+p }

type senderOK struct{}

func (senderOK) Send(context.Context, message.EmailMessage) error { return nil }

type publisherOK struct{}

func (publisherOK) Publish(context.Context, message.EmailMessage) error { return nil }

func newServer() *grpcserver.UserServer {
	repo := newMemRepo()
	userUC := usecase.NewUserUseCase(repo, plainHasher{})
	mailUC := usecase.NewMailUseCase(repo, senderOK{}, publisherOK{})
	return grpcserver.NewUserServer(userUC, mailUC)
}

func validCreate() *userpb.CreateUserRequest {
	return &userpb.CreateUserRequest{
		Names:       "Ana",
		LastNames:   "Pérez",
		Email:       "ana.perez@censudex.cl",
		Username:    "anaperez",
		BirthDate:   "1995-04-20",
		Address:     "Av. Siempre Viva 742, Santiago",
		PhoneNumber: "+56912345678",
		Password:    "Passw0rd2!",
	}
}

func grpcCode(t *testing.T, err error) codes.Code {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok, "el error debe ser un status gRPC")
	return st.Code()
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_GRPC_Exito(t *testing.T) {
	srv := newServer()

	out, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, "Cliente creado exitosamente", out.GetMessage())
	require.NotNil(t, out.GetUser())
	assert.NotEmpty(t, out.GetUser().GetId())
	assert.Equal(t, "Ana Pérez", out.GetUser().GetFullName())
	assert.True(t, out.GetUser().GetStatus())
}

func TestCreate_GRPC_DominioExternoEsInvalidArgument(t *testing.T) {
	srv := newServer()

	req := validCreate()
	req.Email = "ana@gmail.com"

	_, err := srv.Create(context.Background(), req)
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))
}

func TestCreate_GRPC_EmailDuplicadoEsInvalidArgument(t *testing.T) {
	srv := newServer()

	_, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = srv.Create(context.Background(), validCreate())
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err),
		"el conflicto de correo se reporta como argumento inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta, edición, borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestGetById_GRPC_NoEncontradoEsNotFound(t *testing.T) {
	srv := newServer()

	_, err := srv.GetById(context.Background(), &userpb.GetUserByIdRequest{Id: "no-existe"})
	assert.Equal(t, codes.NotFound, grpcCode(t, err))
}

func TestGetAll_GRPC_ListaCuentas(t *testing.T) {
	srv := newServer()

	_, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := srv.GetAll(context.Background(), &userpb.GetAllRequest{})
	require.NoError(t, err)
	assert.Len(t, out.GetUsers(), 1)
}

func TestGetAll_GRPC_FiltroEstadoInvalido(t *testing.T) {
	srv := newServer()

	_, err := srv.GetAll(context.Background(), &userpb.GetAllRequest{StatusFilter: "activo"})
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))
}

func TestUpdate_GRPC_ActualizaCampos(t *testing.T) {
	srv := newServer()

	created, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := srv.Update(context.Background(), &userpb.UpdateUserRequest{
		Id:          created.GetUser().GetId(),
		Names:       "Ana",
		LastNames:   "Pérez Soto",
		Email:       "ana.perez@censudex.cl",
		Username:    "ana.p",
		BirthDate:   "1995-04-20",
		Address:     "Nueva Dirección 123",
		PhoneNumber: "+56912345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "Usuario actualizado exitosamente", out.GetMessage())
	assert.Equal(t, "Ana Pérez Soto", out.GetUser().GetFullName())
}

func TestDelete_GRPC_SoftDelete(t *testing.T) {
	srv := newServer()

	created, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := srv.Delete(context.Background(), &userpb.DeleteUserRequest{Id: created.GetUser().GetId()})
	require.NoError(t, err)
	assert.Equal(t, "Usuario eliminado exitosamente", out.GetMessage())

	got, err := srv.GetById(context.Background(), &userpb.GetUserByIdRequest{Id: created.GetUser().GetId()})
	require.NoError(t, err, "la cuenta sigue siendo consultable tras el borrado")
	assert.False(t, got.GetUser().GetStatus())
	assert.NotEmpty(t, got.GetUser().GetDeletedAt())
}

// ──────────────────────────────────────────────────────────────────────────────
// Credenciales y correo
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyCredentials_GRPC_Exito(t *testing.T) {
	srv := newServer()

	created, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := srv.VerifyCredentials(context.Background(), &userpb.VerifyCredentialsRequest{
		Username: "anaperez",
		Password: "Passw0rd2!",
	})
	require.NoError(t, err)
	assert.Equal(t, created.GetUser().GetId(), out.GetId())
	assert.Equal(t, []string{entity.RoleClient}, out.GetRoles())
}

func TestVerifyCredentials_GRPC_ContrasenaIncorrectaEsInvalidArgument(t *testing.T) {
	srv := newServer()

	_, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	_, err = srv.VerifyCredentials(context.Background(), &userpb.VerifyCredentialsRequest{
		Username: "anaperez",
		Password: "Incorrecta1",
	})
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))
}

func TestVerifyCredentials_GRPC_CuentaDesconocidaEsNotFound(t *testing.T) {
	srv := newServer()

	_, err := srv.VerifyCredentials(context.Background(), &userpb.VerifyCredentialsRequest{
		Username: "fantasma",
		Password: "Passw0rd2!",
	})
	assert.Equal(t, codes.NotFound, grpcCode(t, err))
}

func TestSendEmail_GRPC_DestinatarioNoRegistradoEsInvalidArgument(t *testing.T) {
	srv := newServer()

	_, err := srv.SendEmail(context.Background(), &userpb.SendEmailRequest{
		FromEmail: "noreply@censudex.cl",
		ToEmail:   "desconocido@censudex.cl",
		Subject:   "Hola",
	})
	assert.Equal(t, codes.InvalidArgument, grpcCode(t, err))
}

func TestSendEmail_GRPC_Exito(t *testing.T) {
	srv := newServer()

	_, err := srv.Create(context.Background(), validCreate())
	require.NoError(t, err)

	out, err := srv.SendEmail(context.Background(), &userpb.SendEmailRequest{
		FromEmail: "noreply@censudex.cl",
		ToEmail:   "ana.perez@censudex.cl",
		Subject:   "Bienvenida",
	})
	require.NoError(t, err)
	assert.Equal(t, "Correo electrónico enviado exitosamente", out.GetMessage())
}
