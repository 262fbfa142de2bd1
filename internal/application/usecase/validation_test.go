package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censudex/clients-service/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dominio de correo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateEmailDomain_AceptaCensudex(t *testing.T) {
	assert.NoError(t, validateEmailDomain("ana.perez@censudex.cl"))
}

func TestValidateEmailDomain_EsCaseInsensitive(t *testing.T) {
	assert.NoError(t, validateEmailDomain("Ana.Perez@CENSUDEX.CL"),
		"el sufijo de dominio se compara sin distinguir mayúsculas")
}

func TestValidateEmailDomain_RechazaOtrosDominios(t *testing.T) {
	err := validateEmailDomain("ana.perez@gmail.com")
	assert.ErrorIs(t, err, domain.ErrInvalidEmailDomain,
		"solo se aceptan correos @censudex.cl")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fecha de nacimiento y edad
// ──────────────────────────────────────────────────────────────────────────────

func TestParseBirthDate_FormatoValido(t *testing.T) {
	birth, err := parseBirthDate("2000-01-31")
	require.NoError(t, err)
	assert.Equal(t, 2000, birth.Year())
	assert.Equal(t, time.January, birth.Month())
	assert.Equal(t, 31, birth.Day())
}

func TestParseBirthDate_FormatoInvalido(t *testing.T) {
	for _, in := range []string{"", "31-01-2000", "2000/01/31", "ayer"} {
		_, err := parseBirthDate(in)
		assert.ErrorIs(t, err, domain.ErrInvalidBirthDate,
			"la fecha %q no es AAAA-MM-DD y debe rechazarse", in)
	}
}

// TestAgeAt_CumpleanosAjustaLaResta verifica el ajuste de la edad cuando el
// cumpleaños de este año todavía no ocurre.
func TestAgeAt_CumpleanosAjustaLaResta(t *testing.T) {
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	antes := time.Date(2008, time.June, 14, 0, 0, 0, 0, time.UTC)
	mismo := time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC)
	despues := time.Date(2008, time.June, 16, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 18, ageAt(antes, now), "cumpleaños ya pasado: 18 cumplidos")
	assert.Equal(t, 18, ageAt(mismo, now), "el día del cumpleaños ya cuenta como cumplido")
	assert.Equal(t, 17, ageAt(despues, now), "cumpleaños pendiente: todavía 17")
}

func TestValidateAge_RechazaMenoresDe18(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	menor := time.Date(2010, time.January, 1, 0, 0, 0, 0, time.UTC)

	err := validateAge(menor, now)
	assert.ErrorIs(t, err, domain.ErrUnderage)
}

func TestValidateAge_AceptaExactamente18(t *testing.T) {
	now := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
	justo := time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validateAge(justo, now),
		"quien cumple 18 hoy puede registrarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Teléfono chileno
// ──────────────────────────────────────────────────────────────────────────────

func TestValidatePhone_FormatoChilenoValido(t *testing.T) {
	assert.NoError(t, validatePhone("+56912345678"))
}

func TestValidatePhone_Invalidos(t *testing.T) {
	for _, in := range []string{
		"",              // vacío
		"912345678",     // sin prefijo
		"+5691234567",   // 7 dígitos tras +569
		"+569123456789", // 9 dígitos tras +569
		"+56812345678",  // prefijo de red fija
		"+569abcdefgh",  // no numérico
	} {
		err := validatePhone(in)
		assert.ErrorIs(t, err, domain.ErrInvalidPhone, "teléfono %q debe rechazarse", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de contraseñas
// ──────────────────────────────────────────────────────────────────────────────

func TestValidatePassword_CumplePolitica(t *testing.T) {
	assert.NoError(t, validatePassword("Passw0rd2!"))
}

func TestValidatePassword_Invalidas(t *testing.T) {
	casos := map[string]string{
		"corta":            "Ab1",
		"sin mayúscula":    "password123",
		"sin minúscula":    "PASSWORD123",
		"sin dígito":       "PasswordSola",
		"vacía":            "",
		"solo ocho chars…": "abcdefgh",
	}
	for nombre, pwd := range casos {
		err := validatePassword(pwd)
		assert.ErrorIs(t, err, domain.ErrWeakPassword,
			"contraseña %s (%q) debe rechazarse", nombre, pwd)
	}
}
