package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrUserNotFound           = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists     = errors.New("el correo electrónico ya está en uso")
	ErrInvalidEmailDomain     = errors.New("el correo electrónico debe terminar en @censudex.cl")
	ErrInvalidBirthDate       = errors.New("la fecha de nacimiento no es válida, formato esperado: AAAA-MM-DD")
	ErrUnderage               = errors.New("el usuario debe ser mayor de 18 años")
	ErrWeakPassword           = errors.New("la contraseña debe tener al menos 8 caracteres, una mayúscula, una minúscula y un dígito")
	ErrInvalidPhone           = errors.New("el número de teléfono debe ser válido y comenzar con el código +569")
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidStatusFilter    = errors.New("el filtro de estado no es válido")
	ErrInvalidCredentials     = errors.New("credenciales inválidas")
	ErrRecipientNotRegistered = errors.New("el correo electrónico del destinatario no está registrado")
	ErrEmailDelivery          = errors.New("error al enviar el correo electrónico")
)
