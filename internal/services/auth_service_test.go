package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/placasafe/placasafe-backend/internal/domain/entities"
	domainerrors "github.com/placasafe/placasafe-backend/internal/domain/errors"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/logging"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/persistence/memory"
	"github.com/placasafe/placasafe-backend/internal/infrastructure/token"
	"github.com/placasafe/placasafe-backend/internal/services"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	logger := logging.NewSlogLogger("error")
	store := memory.NewStore()
	issuer := token.NewJWTIssuer("test-secret", time.Hour)

	if err := services.SeedDefaultUsers(ctx, store.Users(), store.UnitOfWork(), logger); err != nil {
		t.Fatalf("erro inesperado no seed: %v", err)
	}

	svc := services.NewAuthService(store.Users(), issuer, logger)

	t.Run("login válido retorna token verificável", func(t *testing.T) {
		user, tokenStr, err := svc.Login(ctx, "admin", "admin123")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if user.Username != "admin" || user.Role != entities.RoleAdmin {
			t.Errorf("usuário inesperado: %s/%s", user.Username, user.Role)
		}

		claims, err := issuer.Verify(tokenStr)
		if err != nil {
			t.Fatalf("token emitido não verifica: %v", err)
		}
		if claims.UserID != user.ID || claims.Role != entities.RoleAdmin {
			t.Error("claims não correspondem ao usuário autenticado")
		}
	})

	t.Run("senha errada", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "admin", "senha-errada")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})

	t.Run("usuário desconhecido recebe o mesmo erro", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "fantasma", "qualquer")
		if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
			t.Fatalf("esperava ErrInvalidCredentials, obteve %v", err)
		}
	})

	t.Run("seed repetido não duplica contas", func(t *testing.T) {
		if err := services.SeedDefaultUsers(ctx, store.Users(), store.UnitOfWork(), logger); err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		count, err := store.Users().Count(ctx)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if count != 4 {
			t.Errorf("esperava 4 contas, obteve %d", count)
		}
	})
}
