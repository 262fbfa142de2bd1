package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	_ "github.com/censudex/clients-service/docs"
	"github.com/censudex/clients-service/genproto/userpb"
	"github.com/censudex/clients-service/internal/application/usecase"
	"github.com/censudex/clients-service/internal/infrastructure/email"
	"github.com/censudex/clients-service/internal/infrastructure/postgres"
	"github.com/censudex/clients-service/internal/infrastructure/queue"
	grpcServer "github.com/censudex/clients-service/internal/interfaces/grpc"
	httpRouter "github.com/censudex/clients-service/internal/interfaces/http"
	"github.com/censudex/clients-service/pkg/config"
	"github.com/censudex/clients-service/pkg/hasher"
	"github.com/censudex/clients-service/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	bcrypt := hasher.NewBcrypt()

	publisher := queue.NewPublisher(cfg.Kafka)
	defer publisher.Close()

	sender := email.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromName)

	userUC := usecase.NewUserUseCase(userRepo, bcrypt)
	mailUC := usecase.NewMailUseCase(userRepo, sender, publisher)

	// Consumidor de la cola de correos: entrega asíncrona con reintento del broker.
	consumer := queue.NewConsumer(cfg.Kafka, mailUC, log)
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	go func() {
		if err := consumer.Run(consumerCtx); err != nil {
			log.Error().Err(err).Msg("consumidor de correos finalizado")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Censudex Clients API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC: userUC,
		MailUC: mailUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	// Servidor gRPC en paralelo al HTTP; ambos comparten los casos de uso.
	grpcSrv := grpc.NewServer()
	userpb.RegisterUserServiceServer(grpcSrv, grpcServer.NewUserServer(userUC, mailUC))
	reflection.Register(grpcSrv)

	go func() {
		lis, err := net.Listen("tcp", cfg.GRPC.Addr())
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.GRPC.Addr()).Msg("escucha gRPC")
		}
		log.Info().Str("addr", cfg.GRPC.Addr()).Msg("servidor gRPC escuchando")
		if err := grpcSrv.Serve(lis); err != nil {
			log.Error().Err(err).Msg("servidor gRPC finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor HTTP")
	}
	grpcSrv.GracefulStop()

	stopConsumer()
	if err := consumer.Close(); err != nil {
		log.Error().Err(err).Msg("cierre del consumidor")
	}

	log.Info().Msg("aplicación detenida")
}
