package usecase

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/censudex/clients-service/internal/domain"
)

// Dominio corporativo exigido para todos los correos de cuentas.
const emailDomainSuffix = "@censudex.cl"

// Formato de fecha de nacimiento aceptado en la API.
const birthDateLayout = "2006-01-02"

// Edad mínima para registrar o mantener una cuenta.
const minimumAge = 18

var phonePattern = regexp.MustCompile(`^\+569\d{8}$`)

// validateEmailDomain verifica que el correo pertenezca al dominio corporativo.
func validateEmailDomain(email string) error {
	if !strings.HasSuffix(strings.ToLower(email), emailDomainSuffix) {
		return domain.ErrInvalidEmailDomain
	}
	return nil
}

// parseBirthDate interpreta la fecha de nacimiento en formato AAAA-MM-DD.
func parseBirthDate(s string) (time.Time, error) {
	t, err := time.Parse(birthDateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidBirthDate
	}
	return t, nil
}

// ageAt calcula la edad en años cumplidos a la fecha indicada.
func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if birth.AddDate(age, 0, 0).After(now) {
		age--
	}
	return age
}

// validateAge exige mayoría de edad al momento de la validación.
func validateAge(birth, now time.Time) error {
	if ageAt(birth, now) < minimumAge {
		return domain.ErrUnderage
	}
	return nil
}

// validatePhone exige el prefijo móvil chileno +569 seguido de 8 dígitos.
func validatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return domain.ErrInvalidPhone
	}
	return nil
}

// validatePassword aplica la política de complejidad: mínimo 8 caracteres,
// al menos una mayúscula, una minúscula y un dígito.
func validatePassword(password string) error {
	if len(password) < 8 {
		return domain.ErrWeakPassword
	}
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return domain.ErrWeakPassword
	}
	return nil
}
