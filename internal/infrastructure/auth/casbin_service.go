package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// CasbinService owns the route-authorization enforcer. Policies live in
// the same Postgres database as the rest of the data, via the gorm
// adapter, so they survive restarts and can be edited at runtime.
type CasbinService struct {
	E *casbin.Enforcer
}

// NewCasbinService builds an enforcer backed by the application database
func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(modelPath, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load casbin policies: %w", err)
	}

	return &CasbinService{E: enforcer}, nil
}
