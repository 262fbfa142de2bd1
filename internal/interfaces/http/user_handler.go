package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/application/usecase"
)

// UserHandler expone el ciclo de vida de cuentas sobre HTTP.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler de cuentas.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar cliente
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "datos del cliente"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// List godoc
// @Summary      Listar clientes con filtros opcionales
// @Tags         user
// @Produce      json
// @Param        NameFilter      query  string  false  "substring del nombre"
// @Param        EmailFilter     query  string  false  "substring del correo"
// @Param        StatusFilter    query  string  false  "true o false"
// @Param        UsernameFilter  query  string  false  "substring del username"
// @Success      200  {array}   dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/user/getAll [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	in := dto.ListRequest{
		NameFilter:     c.Query("NameFilter"),
		EmailFilter:    c.Query("EmailFilter"),
		StatusFilter:   c.Query("StatusFilter"),
		UsernameFilter: c.Query("UsernameFilter"),
	}
	users, err := h.uc.List(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(users)
}

// GetByID godoc
// @Summary      Obtener cliente por ID
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "ID de la cuenta"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// Update godoc
// @Summary      Editar cliente
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID de la cuenta"
// @Param        body  body  dto.EditUserRequest  true  "datos a actualizar (password opcional)"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.EditUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// Delete godoc
// @Summary      Eliminar cliente (soft delete)
// @Tags         user
// @Produce      json
// @Param        id   path      string  true  "ID de la cuenta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.SoftDelete(c.UserContext(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario eliminado exitosamente"})
}

// VerifyCredentials godoc
// @Summary      Verificar credenciales
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCredentialsRequest  true  "username (o email) y password"
// @Success      200   {object}  dto.VerifyCredentialsResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/user/verifyCredentials [post]
func (h *UserHandler) VerifyCredentials(c *fiber.Ctx) error {
	var in dto.VerifyCredentialsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.VerifyCredentials(c.UserContext(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
