package dto

// RegisterRequest payload para crear una cuenta de cliente.
// BirthDate viaja como string en formato AAAA-MM-DD.
type RegisterRequest struct {
	Names       string `json:"names"`
	LastNames   string `json:"lastNames"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	BirthDate   string `json:"birthDate"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

// EditUserRequest payload para editar una cuenta existente.
// Password es opcional: si viene vacío no se cambia la contraseña.
type EditUserRequest struct {
	Names       string `json:"names"`
	LastNames   string `json:"lastNames"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	BirthDate   string `json:"birthDate"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password,omitempty"`
}

// ListRequest filtros opcionales del listado. Se combinan con AND.
// StatusFilter acepta "true"/"false"; vacío significa sin restricción.
type ListRequest struct {
	NameFilter     string `json:"nameFilter"`
	EmailFilter    string `json:"emailFilter"`
	StatusFilter   string `json:"statusFilter"`
	UsernameFilter string `json:"usernameFilter"`
}

// UserResponse representación visible de una cuenta (nunca incluye el hash).
type UserResponse struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Username    string `json:"username"`
	Status      bool   `json:"status"`
	BirthDate   string `json:"birthDate"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
	CreatedAt   string `json:"createdAt"`
	DeletedAt   string `json:"deletedAt,omitempty"`
}

// VerifyCredentialsRequest credenciales a verificar. Username puede ser
// el nombre de usuario o el correo electrónico.
type VerifyCredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// VerifyCredentialsResponse resultado de la verificación: id y roles de la cuenta.
type VerifyCredentialsResponse struct {
	ID    string   `json:"id"`
	Roles []string `json:"roles"`
}

// SendMailRequest payload para el envío directo de un correo.
type SendMailRequest struct {
	FromEmail        string `json:"fromEmail"`
	ToEmail          string `json:"toEmail"`
	Subject          string `json:"subject"`
	PlainTextContent string `json:"plainTextContent"`
	HtmlContent      string `json:"htmlContent"`
}

// MessageResponse respuesta genérica con un mensaje humano.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
