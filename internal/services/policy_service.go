package services

import (
	"fmt"

	"github.com/fasalmbt/complainto/domain"
)

// Admin grant seeded on first boot: the admin role owns every method
// under the admin API. The regex method group is matched by the
// regexMatch act rule in the casbin model.
const (
	adminRole    = "role_admin"
	adminRoutes  = "/api/admin/*"
	adminMethods = "(GET|POST|PUT|DELETE)"
)

// PolicyServiceImpl implements domain.PolicyService on a casbin enforcer
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer domain.CasbinEnforcer) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer}
}

// AddPolicy implements domain.PolicyService. Mutations are persisted
// immediately so a restart cannot lose them.
func (p *PolicyServiceImpl) AddPolicy(role, resource, action string) error {
	if _, err := p.enforcer.AddPolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	return p.enforcer.SavePolicy()
}

// RemovePolicy implements domain.PolicyService
func (p *PolicyServiceImpl) RemovePolicy(role, resource, action string) error {
	if _, err := p.enforcer.RemovePolicy(role, resource, action); err != nil {
		return fmt.Errorf("failed to remove policy: %w", err)
	}
	return p.enforcer.SavePolicy()
}

// CheckPermission implements domain.PolicyService
func (p *PolicyServiceImpl) CheckPermission(role, resource, action string) (bool, error) {
	return p.enforcer.Enforce(role, resource, action)
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() [][]string {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil
	}
	return policies
}

// EnsureDefaultPolicies seeds the admin route grant when the policy
// store is empty, which only happens on first boot against a fresh
// database. Reports whether anything was written.
func EnsureDefaultPolicies(policySvc domain.PolicyService) (bool, error) {
	if len(policySvc.GetPolicies()) > 0 {
		return false, nil
	}
	if err := policySvc.AddPolicy(adminRole, adminRoutes, adminMethods); err != nil {
		return false, err
	}
	return true, nil
}
