package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type BootstrapConfig struct {
	AdminUsername string
	AdminPassword string
}

// EnsureDefaults seeds the admin user and the well-known default workspace on
// an empty store. Running it against a populated store is a no-op, so it is
// safe on every startup regardless of backend.
func EnsureDefaults(ctx context.Context, stores store.Provider, cfg BootstrapConfig) error {
	users := stores.Users()
	if _, err := users.GetByUsername(ctx, cfg.AdminUsername); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking admin user: %w", err)
		}
		admin := &model.User{
			Username:    cfg.AdminUsername,
			Password:    cfg.AdminPassword,
			DisplayName: "Administrator",
			Role:        model.RoleAdmin,
		}
		if err := users.Create(ctx, admin); err != nil {
			return fmt.Errorf("seeding admin user: %w", err)
		}
		slog.InfoContext(ctx, "admin user seeded", "user_id", admin.ID)
	}

	workspaces := stores.Workspaces()
	existing, err := workspaces.List(ctx)
	if err != nil {
		return fmt.Errorf("listing workspaces: %w", err)
	}
	if len(existing) == 0 {
		ws := &model.Workspace{Name: "General"}
		if err := workspaces.Create(ctx, ws); err != nil {
			return fmt.Errorf("seeding default workspace: %w", err)
		}
		slog.InfoContext(ctx, "default workspace seeded", "workspace_id", ws.ID)
	}

	return nil
}
