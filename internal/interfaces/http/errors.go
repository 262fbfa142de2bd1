package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/domain"
)

// errorResponse traduce errores de dominio a respuestas HTTP. Los handlers
// no contienen reglas de negocio: solo delegan y mapean.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidEmailDomain),
		errors.Is(err, domain.ErrInvalidBirthDate),
		errors.Is(err, domain.ErrUnderage),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidStatusFilter),
		errors.Is(err, domain.ErrRecipientNotRegistered),
		errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
