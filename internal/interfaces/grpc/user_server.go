package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/censudex/clients-service/genproto/userpb"
	"github.com/censudex/clients-service/internal/application/dto"
	"github.com/censudex/clients-service/internal/application/usecase"
	"github.com/censudex/clients-service/internal/domain"
)

// UserServer expone el ciclo de vida de cuentas sobre gRPC. Es un traductor
// puro: todas las reglas viven en los casos de uso.
type UserServer struct {
	userpb.UnimplementedUserServiceServer
	userUC *usecase.UserUseCase
	mailUC *usecase.MailUseCase
}

// NewUserServer construye el servicio gRPC de cuentas.
func NewUserServer(userUC *usecase.UserUseCase, mailUC *usecase.MailUseCase) *UserServer {
	return &UserServer{userUC: userUC, mailUC: mailUC}
}

// Create registra un cliente nuevo.
func (s *UserServer) Create(ctx context.Context, req *userpb.CreateUserRequest) (*userpb.CreateUserResponse, error) {
	user, err := s.userUC.Register(ctx, dto.RegisterRequest{
		Names:       req.GetNames(),
		LastNames:   req.GetLastNames(),
		Email:       req.GetEmail(),
		Username:    req.GetUsername(),
		BirthDate:   req.GetBirthDate(),
		Address:     req.GetAddress(),
		PhoneNumber: req.GetPhoneNumber(),
		Password:    req.GetPassword(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &userpb.CreateUserResponse{
		Message: "Cliente creado exitosamente",
		User:    toProtoUser(user),
	}, nil
}

// GetAll lista clientes con filtros opcionales.
func (s *UserServer) GetAll(ctx context.Context, req *userpb.GetAllRequest) (*userpb.GetAllResponse, error) {
	users, err := s.userUC.List(ctx, dto.ListRequest{
		NameFilter:     req.GetNameFilter(),
		EmailFilter:    req.GetEmailFilter(),
		StatusFilter:   req.GetStatusFilter(),
		UsernameFilter: req.GetUsernameFilter(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	out := &userpb.GetAllResponse{Users: make([]*userpb.User, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, toProtoUser(u))
	}
	return out, nil
}

// GetById obtiene un cliente por su ID.
func (s *UserServer) GetById(ctx context.Context, req *userpb.GetUserByIdRequest) (*userpb.GetUserByIdResponse, error) {
	user, err := s.userUC.GetByID(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}
	return &userpb.GetUserByIdResponse{User: toProtoUser(user)}, nil
}

// Update edita un cliente existente; la contraseña es opcional.
func (s *UserServer) Update(ctx context.Context, req *userpb.UpdateUserRequest) (*userpb.UpdateUserResponse, error) {
	user, err := s.userUC.Update(ctx, req.GetId(), dto.EditUserRequest{
		Names:       req.GetNames(),
		LastNames:   req.GetLastNames(),
		Email:       req.GetEmail(),
		Username:    req.GetUsername(),
		BirthDate:   req.GetBirthDate(),
		Address:     req.GetAddress(),
		PhoneNumber: req.GetPhoneNumber(),
		Password:    req.GetPassword(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &userpb.UpdateUserResponse{
		Message: "Usuario actualizado exitosamente",
		User:    toProtoUser(user),
	}, nil
}

// Delete marca un cliente como inactivo (soft delete).
func (s *UserServer) Delete(ctx context.Context, req *userpb.DeleteUserRequest) (*userpb.DeleteUserResponse, error) {
	if err := s.userUC.SoftDelete(ctx, req.GetId()); err != nil {
		return nil, statusFromError(err)
	}
	return &userpb.DeleteUserResponse{Message: "Usuario eliminado exitosamente"}, nil
}

// VerifyCredentials valida username (o email) y contraseña.
func (s *UserServer) VerifyCredentials(ctx context.Context, req *userpb.VerifyCredentialsRequest) (*userpb.VerifyCredentialsResponse, error) {
	out, err := s.userUC.VerifyCredentials(ctx, dto.VerifyCredentialsRequest{
		Username: req.GetUsername(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &userpb.VerifyCredentialsResponse{Id: out.ID, Roles: out.Roles}, nil
}

// SendEmail envía un correo directo a un cliente registrado.
func (s *UserServer) SendEmail(ctx context.Context, req *userpb.SendEmailRequest) (*userpb.SendEmailResponse, error) {
	err := s.mailUC.SendDirect(ctx, dto.SendMailRequest{
		FromEmail:        req.GetFromEmail(),
		ToEmail:          req.GetToEmail(),
		Subject:          req.GetSubject(),
		PlainTextContent: req.GetPlainTextContent(),
		HtmlContent:      req.GetHtmlContent(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &userpb.SendEmailResponse{Message: "Correo electrónico enviado exitosamente"}, nil
}

// statusFromError traduce errores de dominio a códigos gRPC.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrInvalidEmailDomain),
		errors.Is(err, domain.ErrInvalidBirthDate),
		errors.Is(err, domain.ErrUnderage),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidPhone),
		errors.Is(err, domain.ErrInvalidStatusFilter),
		errors.Is(err, domain.ErrRecipientNotRegistered),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toProtoUser(u *dto.UserResponse) *userpb.User {
	if u == nil {
		return nil
	}
	return &userpb.User{
		Id:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Username:    u.Username,
		Status:      u.Status,
		BirthDate:   u.BirthDate,
		Address:     u.Address,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		DeletedAt:   u.DeletedAt,
	}
}
