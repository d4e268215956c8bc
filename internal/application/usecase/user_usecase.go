package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Libreria-api/internal/application/dto"
	"github.com/jhoicas/Libreria-api/internal/domain"
	"github.com/jhoicas/Libreria-api/internal/domain/authz"
	"github.com/jhoicas/Libreria-api/internal/domain/entity"
	"github.com/jhoicas/Libreria-api/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios. La baja siempre es lógica:
// estado suspendido, email original preservado en superseded_email y la columna
// email liberada con un sufijo para que el índice único admita una cuenta nueva.
type UserUseCase struct {
	repo     repository.UserRepository
	deleteTx DeleteTxRunner
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository, deleteTx DeleteTxRunner) *UserUseCase {
	return &UserUseCase{repo: repo, deleteTx: deleteTx}
}

func roleValido(r string) bool {
	switch authz.Role(r) {
	case authz.RoleAdmin, authz.RoleSeller, authz.RoleInventory, authz.RoleReadonly:
		return true
	}
	return false
}

// Create crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 8 || in.Nombre == "" || !roleValido(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nombre:       in.Nombre,
		Role:         in.Role,
		Estado:       entity.UserEstadoActivo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return userToResponse(user), nil
}

// List lista usuarios.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{Items: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Items = append(out.Items, *userToResponse(u))
	}
	return out, nil
}

// Update modifica nombre, rol o estado.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		user.Nombre = in.Nombre
	}
	if in.Role != "" {
		if !roleValido(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Estado != "" {
		if in.Estado != entity.UserEstadoActivo && in.Estado != entity.UserEstadoSuspendido {
			return nil, domain.ErrInvalidInput
		}
		user.Estado = in.Estado
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return userToResponse(user), nil
}

// Delete da de baja un usuario. Siempre tombstone: nunca se borra el registro porque
// sesiones y ventas lo referencian. currentUserID es la identidad autenticada de la
// petición; borrarse a sí mismo está prohibido.
func (uc *UserUseCase) Delete(ctx context.Context, currentUserID, id string) (string, error) {
	if id == currentUserID {
		return "", domain.ErrSelfDelete
	}
	action := ""
	err := uc.deleteTx.RunDelete(ctx, func(
		saleRepo repository.SaleRepository,
		bookRepo repository.BookRepository,
		clientRepo repository.ClientRepository,
		userRepo repository.UserRepository,
	) error {
		user, err := userRepo.GetByID(id)
		if err != nil {
			return err
		}
		if user == nil {
			return domain.ErrNotFound
		}
		if user.Estado != entity.UserEstadoSuspendido {
			user.SupersededEmail = user.Email
			user.Email = supersededEmail(user.Email, user.ID)
			user.Estado = entity.UserEstadoSuspendido
			user.UpdatedAt = time.Now()
			if err := userRepo.Update(user); err != nil {
				return err
			}
		}
		action = ActionSuspended
		return nil
	})
	if err != nil {
		return "", err
	}
	return action, nil
}

// supersededEmail libera el índice único de email sin perder el valor original:
// usuario@dominio → usuario+baja-1a2b3c4d@dominio.
func supersededEmail(email, userID string) string {
	shortID := strings.ReplaceAll(userID, "-", "")
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return fmt.Sprintf("%s+baja-%s", email, shortID)
	}
	return fmt.Sprintf("%s+baja-%s%s", email[:at], shortID, email[at:])
}

func userToResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Nombre:    u.Nombre,
		Role:      u.Role,
		Estado:    u.Estado,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
