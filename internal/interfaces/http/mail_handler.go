package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/application/usecase"
)

// MailHandler expone el envío directo de correos transaccionales.
type MailHandler struct {
	uc *usecase.MailUseCase
}

// NewMailHandler construye el handler de correos.
func NewMailHandler(uc *usecase.MailUseCase) *MailHandler {
	return &MailHandler{uc: uc}
}

// SendMail godoc
// @Summary      Enviar correo a un cliente registrado
// @Tags         mail
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMailRequest  true  "remitente, destinatario y contenido"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/user/sendMail [post]
func (h *MailHandler) SendMail(c *fiber.Ctx) error {
	var in dto.SendMailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ToEmail == "" || in.FromEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fromEmail y toEmail son requeridos"})
	}
	if err := h.uc.SendDirect(c.UserContext(), in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Correo electrónico enviado exitosamente"})
}

// QueueMail godoc
// @Summary      Encolar correo para entrega asíncrona
// @Tags         mail
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMailRequest  true  "remitente, destinatario y contenido"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/user/queueMail [post]
func (h *MailHandler) QueueMail(c *fiber.Ctx) error {
	var in dto.SendMailRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ToEmail == "" || in.FromEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fromEmail y toEmail son requeridos"})
	}
	if err := h.uc.Enqueue(c.UserContext(), in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Correo electrónico encolado exitosamente"})
}
