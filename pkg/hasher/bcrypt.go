package hasher

import "golang.org/x/crypto/bcrypt"

// Bcrypt implementa el hasheo y verificación de contraseñas con bcrypt.
// El digest es opaco para el resto del sistema.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el hasher con el costo por defecto de bcrypt.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

// Hash genera el digest bcrypt de una contraseña en claro.
func (b *Bcrypt) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify indica si la contraseña en claro corresponde al digest almacenado.
func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
