package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/censudex/clients-service/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC *usecase.UserUseCase
	MailUC *usecase.MailUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	users := api.Group("/user")
	userHandler := NewUserHandler(deps.UserUC)
	mailHandler := NewMailHandler(deps.MailUC)

	// Rutas fijas antes de las rutas con :id
	users.Post("/", userHandler.Register)
	users.Get("/getAll", userHandler.List)
	users.Post("/verifyCredentials", userHandler.VerifyCredentials)
	users.Post("/sendMail", mailHandler.SendMail)
	users.Post("/queueMail", mailHandler.QueueMail)

	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
