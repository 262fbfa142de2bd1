package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/application/usecase"
	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/entity"
	"github.com/censudex/clients-service/internal/domain/message"
	"github.com/censudex/clients-service/internal/domain/repository"
	apphttp "github.com/censudex/clients-service/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

// memRepo repositorio en memoria con la misma semántica que el de PostgreSQL.
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

func (r *memRepo) List(_ context.Context, f repository.ListFilters) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		if f.Status != nil && u.Status != *f.Status {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *memRepo) EmailExists(_ context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(context.Background(), email)
	return u != nil, nil
}

// plainHasher digest trivial para no pagar bcrypt en cada test HTTP.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "h:" + p, nil }
func (plainHasher) Verify(p, d string) bool       { return d == "h:"+p }

// senderOK y publisherOK aceptan siempre: los caminos de rechazo del
// proveedor se prueban en el paquete usecase.
type senderOK struct{}

func (senderOK) Send(context.Context, message.EmailMessage) error { return nil }

type publisherOK struct{}

func (publisherOK) Publish(context.Context, message.EmailMessage) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildApp() (*fiber.App, *memRepo) {
	repo := newMemRepo()
	userUC := usecase.NewUserUseCase(repo, plainHasher{})
	mailUC := usecase.NewMailUseCase(repo, senderOK{}, publisherOK{})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{UserUC: userUC, MailUC: mailUC})
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
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

func registerOne(t *testing.T, app *fiber.App) dto.UserResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/user", validRegister())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.UserResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_HTTP_200ConCuentaCreada(t *testing.T) {
	app, _ := buildApp()

	out := registerOne(t, app)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Ana Pérez", out.FullName)
	assert.Equal(t, entity.RoleClient, out.Role)
	assert.True(t, out.Status)
}

func TestRegister_HTTP_DominioExterno400(t *testing.T) {
	app, _ := buildApp()

	in := validRegister()
	in.Email = "ana@gmail.com"
	resp := doJSON(t, app, http.MethodPost, "/api/user", in)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestRegister_HTTP_EmailDuplicado400(t *testing.T) {
	app, _ := buildApp()
	registerOne(t, app)

	in := validRegister()
	in.Username = "otraana"
	resp := doJSON(t, app, http.MethodPost, "/api/user", in)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "EMAIL_EXISTS", body.Code)
}

func TestRegister_HTTP_CuerpoInvalido400(t *testing.T) {
	app, _ := buildApp()

	req := httptest.NewRequest(http.MethodPost, "/api/user", bytes.NewBufferString("{no es json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_HTTP_NoEncontrado404(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodGet, "/api/user/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Equal(t, domain.ErrUserNotFound.Error(), body.Message)
}

func TestGetByID_HTTP_Encontrado200(t *testing.T) {
	app, _ := buildApp()
	created := registerOne(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/user/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.UserResponse](t, resp)
	assert.Equal(t, created.ID, out.ID)
}

func TestGetAll_HTTP_FiltroEstadoInvalido400(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodGet, "/api/user/getAll?StatusFilter=activo", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetAll_HTTP_Lista200(t *testing.T) {
	app, _ := buildApp()
	registerOne(t, app)

	resp := doJSON(t, app, http.MethodGet, "/api/user/getAll", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[[]dto.UserResponse](t, resp)
	assert.Len(t, out, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_HTTP_Actualiza200(t *testing.T) {
	app, _ := buildApp()
	created := registerOne(t, app)

	edit := dto.EditUserRequest{
		Names:       "Ana",
		LastNames:   "Pérez Soto",
		Email:       created.Email,
		Username:    "ana.p",
		BirthDate:   created.BirthDate,
		Address:     "Nueva Dirección 123",
		PhoneNumber: created.PhoneNumber,
	}
	resp := doJSON(t, app, http.MethodPut, "/api/user/"+created.ID, edit)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "Ana Pérez Soto", out.FullName)
	assert.Equal(t, "ana.p", out.Username)
}

func TestDelete_HTTP_SoftDelete200(t *testing.T) {
	app, repo := buildApp()
	created := registerOne(t, app)

	resp := doJSON(t, app, http.MethodDelete, "/api/user/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.MessageResponse](t, resp)
	assert.Equal(t, "Usuario eliminado exitosamente", body.Message)

	stored := repo.users[created.ID]
	assert.False(t, stored.Status, "la cuenta debe quedar inactiva")
	assert.NotNil(t, stored.DeletedAt)
}

func TestDelete_HTTP_NoEncontrado404(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodDelete, "/api/user/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Verificación de credenciales
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifyCredentials_HTTP_Exito200(t *testing.T) {
	app, _ := buildApp()
	created := registerOne(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/user/verifyCredentials", dto.VerifyCredentialsRequest{
		Username: "anaperez",
		Password: "Passw0rd2!",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.VerifyCredentialsResponse](t, resp)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, []string{entity.RoleClient}, out.Roles)
}

func TestVerifyCredentials_HTTP_ContrasenaIncorrecta401(t *testing.T) {
	app, _ := buildApp()
	registerOne(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/user/verifyCredentials", dto.VerifyCredentialsRequest{
		Username: "anaperez",
		Password: "Incorrecta1",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyCredentials_HTTP_CamposVacios400(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/user/verifyCredentials", dto.VerifyCredentialsRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVerifyCredentials_HTTP_CuentaDesconocida404(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/user/verifyCredentials", dto.VerifyCredentialsRequest{
		Username: "fantasma",
		Password: "Passw0rd2!",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Correo
// ──────────────────────────────────────────────────────────────────────────────

func TestSendMail_HTTP_DestinatarioNoRegistrado400(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/user/sendMail", dto.SendMailRequest{
		FromEmail: "noreply@censudex.cl",
		ToEmail:   "desconocido@censudex.cl",
		Subject:   "Hola",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestSendMail_HTTP_Exito200(t *testing.T) {
	app, _ := buildApp()
	registerOne(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/user/sendMail", dto.SendMailRequest{
		FromEmail: "noreply@censudex.cl",
		ToEmail:   "ana.perez@censudex.cl",
		Subject:   "Bienvenida",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.MessageResponse](t, resp)
	assert.Equal(t, "Correo electrónico enviado exitosamente", body.Message)
}

func TestSendMail_HTTP_CamposRequeridos400(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/user/sendMail", dto.SendMailRequest{Subject: "sin direcciones"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestQueueMail_HTTP_Encola200(t *testing.T) {
	app, _ := buildApp()

	resp := doJSON(t, app, http.MethodPost, "/api/user/queueMail", dto.SendMailRequest{
		FromEmail: "noreply@censudex.cl",
		ToEmail:   "ana.perez@censudex.cl",
		Subject:   "Bienvenida",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[dto.MessageResponse](t, resp)
	assert.Equal(t, "Correo electrónico encolado exitosamente", body.Message)
}
