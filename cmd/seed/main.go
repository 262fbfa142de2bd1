// seed puebla la base con cuentas de prueba: 100 clientes generados con
// datos falsos y un administrador fijo para entrar al sistema.
//
// Uso: go run ./cmd/seed
// Es idempotente: los correos que ya existen se omiten sin error.
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/application/usecase"
	"github.com/censudex/clients-service/internal/domain"
	"github.com/censudex/clients-service/internal/domain/entity"
	"github.com/censudex/clients-service/internal/infrastructure/postgres"
	"github.com/censudex/clients-service/pkg/config"
	"github.com/censudex/clients-service/pkg/hasher"
	"github.com/censudex/clients-service/pkg/logger"
)

const (
	clientCount    = 100
	clientPassword = "Passw0rd2!"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	uc := usecase.NewUserUseCase(userRepo, hasher.NewBcrypt())

	faker := gofakeit.New(0)

	created, skipped := 0, 0
	for i := 0; i < clientCount; i++ {
		first := faker.FirstName()
		last := faker.LastName()
		email := fmt.Sprintf("%s.%s@censudex.cl", slug(first), slug(last))

		_, err := uc.Register(ctx, dto.RegisterRequest{
			Names:       first,
			LastNames:   last,
			Email:       email,
			Username:    slug(first) + slug(last),
			BirthDate:   randomAdultBirthDate(faker),
			Address:     faker.Street() + ", " + faker.City(),
			PhoneNumber: "+569" + faker.DigitN(8),
			Password:    clientPassword,
		})
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			skipped++
		case err != nil:
			log.Fatal().Err(err).Str("email", email).Msg("sembrar cliente")
		default:
			created++
		}
	}

	_, err = uc.CreateWithRole(ctx, dto.RegisterRequest{
		Names:       "Administrador",
		LastNames:   "Censudex",
		Email:       "admin@censudex.cl",
		Username:    "adminCensudex",
		BirthDate:   "2000-01-01",
		Address:     "Censudex Headquarters",
		PhoneNumber: "+56912345678",
		Password:    "Admin1234!",
	}, entity.RoleAdmin)
	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Msg("administrador ya existente, se omite")
	case err != nil:
		log.Fatal().Err(err).Msg("sembrar administrador")
	default:
		log.Info().Msg("administrador creado")
	}

	log.Info().
		Int("creados", created).
		Int("omitidos", skipped).
		Msg("siembra finalizada")
}

// slug normaliza un nombre para usarlo en correos y usernames.
func slug(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// randomAdultBirthDate devuelve una fecha de nacimiento entre 18 y 80 años atrás.
func randomAdultBirthDate(faker *gofakeit.Faker) string {
	now := time.Now().UTC()
	from := now.AddDate(-80, 0, 0)
	to := now.AddDate(-18, 0, 0)
	return faker.DateRange(from, to).Format("2006-01-02")
}
