package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-admin/internal/domain/entity"
)

// Account cuenta inicial.
type Account struct {
	Username string
	Password string
	Role     string
}

// DefaultAccounts admin/admin123 y seller1..seller4 con password 1234.
var DefaultAccounts = []Account{
	{Username: "admin", Password: "admin123", Role: entity.RoleAdmin},
	{Username: "seller1", Password: "1234", Role: entity.RoleSeller},
	{Username: "seller2", Password: "1234", Role: entity.RoleSeller},
	{Username: "seller3", Password: "1234", Role: entity.RoleSeller},
	{Username: "seller4", Password: "1234", Role: entity.RoleSeller},
}

// AccountEnsurer crea una cuenta si el username no existe. Lo implementa *usecase.UserUseCase.
type AccountEnsurer interface {
	EnsureAccount(ctx context.Context, username, password, role string) (bool, error)
}

// SeedAccounts crea las cuentas que falten. Las existentes no se modifican.
func SeedAccounts(ctx context.Context, users AccountEnsurer, accounts []Account, log zerolog.Logger) error {
	created := 0
	for _, a := range accounts {
		ok, err := users.EnsureAccount(ctx, a.Username, a.Password, a.Role)
		if err != nil {
			return fmt.Errorf("seed %s: %w", a.Username, err)
		}
		if ok {
			created++
			log.Info().Str("username", a.Username).Str("role", a.Role).Msg("cuenta inicial creada")
		}
	}
	log.Info().Int("creadas", created).Int("total", len(accounts)).Msg("seed de cuentas completado")
	return nil
}
