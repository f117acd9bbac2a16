package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase almacén de credenciales: alta, verificación y baja de cuentas.
type UserUseCase struct {
	repo     repository.UserRepository
	sessions repository.SessionStore
	log      zerolog.Logger
	hashCost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, sessions repository.SessionStore, log zerolog.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, sessions: sessions, log: log, hashCost: bcrypt.DefaultCost}
}

// Create crea una cuenta. Role vacío = seller. Devuelve ErrDuplicateUsername si el username existe.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleSeller
	}
	if username == "" || in.Password == "" || !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
	return toUserResponse(user), nil
}

// Verify comprueba username/password. Devuelve ErrAuthFailure sin distinguir usuario inexistente
// de contraseña incorrecta; en ambos casos se realiza una comparación bcrypt.
func (uc *UserUseCase) Verify(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := uc.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummy(), []byte(password))
		return nil, domain.ErrAuthFailure
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrAuthFailure
	}
	return user, nil
}

func (uc *UserUseCase) dummy() []byte {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("pos-admin-dummy"), uc.hashCost)
	})
	return uc.dummyHash
}

// Delete elimina una cuenta de vendedor y sus sesiones. Las ventas históricas se conservan
// sin vendedor. Las cuentas admin no se pueden eliminar (ErrProtected).
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.IsAdmin() {
		return domain.ErrProtected
	}
	deleted, err := uc.repo.DeleteSeller(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	if err := uc.sessions.DeleteByUser(ctx, id); err != nil {
		uc.log.Warn().Err(err).Int64("user_id", id).Msg("no se pudieron borrar las sesiones del usuario")
	}
	uc.log.Info().Int64("user_id", id).Str("username", user.Username).Msg("usuario eliminado")
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista todas las cuentas ordenadas por id.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// EnsureAccount crea la cuenta si el username no existe. Devuelve true si la creó.
func (uc *UserUseCase) EnsureAccount(ctx context.Context, username, password, role string) (bool, error) {
	existing, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if _, err := uc.Create(ctx, dto.CreateUserRequest{Username: username, Password: password, Role: role}); err != nil {
		return false, err
	}
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
