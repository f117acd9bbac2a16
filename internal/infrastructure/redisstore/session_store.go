// Package redisstore implementa el almacén de sesiones sobre Redis.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
	"github.com/jhoicas/pos-admin/internal/domain/repository"
)

var _ repository.SessionStore = (*SessionStore)(nil)

const (
	sessionPrefix     = "session:"
	userSessionPrefix = "user_sessions:"
)

type storedSession struct {
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore guarda cada sesión en session:<id> con TTL y un set user_sessions:<uid>
// con los ids del usuario para poder invalidarlas todas.
type SessionStore struct {
	client *redis.Client
	now    func() time.Time
}

// New conecta a Redis con la URL dada (redis://...) y verifica la conexión.
func New(ctx context.Context, url string) (*SessionStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewFromClient(client), nil
}

// NewFromClient envuelve un cliente existente.
func NewFromClient(client *redis.Client) *SessionStore {
	return &SessionStore{client: client, now: time.Now}
}

// Create guarda la sesión hasta su ExpiresAt.
func (s *SessionStore) Create(ctx context.Context, session *entity.Session) error {
	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return fmt.Errorf("redis: sesión ya vencida")
	}
	data, err := json.Marshal(storedSession{
		UserID:    session.UserID,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return err
	}
	setKey := userKey(session.UserID)
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, sessionPrefix+session.ID, data, ttl)
		p.SAdd(ctx, setKey, session.ID)
		p.Expire(ctx, setKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis create session: %w", err)
	}
	return nil
}

// Get devuelve la sesión vigente; (nil, nil) si no existe o venció.
func (s *SessionStore) Get(ctx context.Context, id string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, sessionPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("redis decode session: %w", err)
	}
	session := &entity.Session{
		ID:        id,
		UserID:    stored.UserID,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}
	if session.Expired(s.now()) {
		return nil, nil
	}
	return session, nil
}

// Delete elimina la sesión y la quita del set del usuario. No falla si ya no existe.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	key := sessionPrefix + id
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("redis get session: %w", err)
	}
	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		// sin user id no hay set que limpiar
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("redis delete session: %w", err)
		}
		return nil
	}
	_, err = s.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Del(ctx, key)
		p.SRem(ctx, userKey(stored.UserID), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

// DeleteByUser elimina todas las sesiones del usuario.
func (s *SessionStore) DeleteByUser(ctx context.Context, userID int64) error {
	key := userKey(userID)
	ids, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("redis list user sessions: %w", err)
	}
	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionPrefix+id)
	}
	keys = append(keys, key)
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete user sessions: %w", err)
	}
	return nil
}

// Close cierra el cliente.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

func userKey(userID int64) string {
	return userSessionPrefix + strconv.FormatInt(userID, 10)
}
