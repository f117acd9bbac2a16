package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/application/dto"
	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
	"github.com/jhoicas/pos-admin/pkg/jwt"
)

// SessionConfig configuración de la cookie de sesión.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// CredentialVerifier verifica username/password contra el almacén de credenciales.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (*entity.User, error)
}

// Identity usuario autenticado de la petición en curso.
type Identity struct {
	SessionID string
	User      *entity.User
}

// LoginResult token firmado para la cookie y el usuario autenticado.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUseCase casos de uso de sesión: login, logout e identidad actual.
type AuthUseCase struct {
	creds    CredentialVerifier
	users    repository.UserRepository
	sessions repository.SessionStore
	cfg      SessionConfig
	log      zerolog.Logger
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	creds CredentialVerifier,
	users repository.UserRepository,
	sessions repository.SessionStore,
	cfg SessionConfig,
	log zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{creds: creds, users: users, sessions: sessions, cfg: cfg, log: log, now: time.Now}
}

// Login verifica credenciales, persiste una sesión nueva y firma el token de la cookie.
// Devuelve domain.ErrAuthFailure si las credenciales no son válidas.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*LoginResult, error) {
	user, err := uc.creds.Verify(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	session := &entity.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.cfg.TTL),
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("crear sesión: %w", err)
	}
	token, err := jwt.Generate(uc.cfg.Secret, session.ID, user.ID, user.Role, uc.cfg.Issuer, uc.cfg.TTL)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("login")
	return &LoginResult{Token: token, ExpiresAt: session.ExpiresAt, User: user}, nil
}

// Logout elimina la sesión referenciada por el token. Un token inválido no es error.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	sessionID, userID, _, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil
	}
	if err := uc.sessions.Delete(ctx, sessionID); err != nil {
		return err
	}
	uc.log.Info().Int64("user_id", userID).Msg("logout")
	return nil
}

// CurrentIdentity resuelve el usuario del token: firma, sesión vigente y usuario existente.
// Devuelve (nil, nil) si cualquiera de las tres comprobaciones falla.
func (uc *AuthUseCase) CurrentIdentity(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}
	sessionID, userID, _, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, nil
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID || session.Expired(uc.now()) {
		return nil, nil
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &Identity{SessionID: sessionID, User: user}, nil
}
