package authz

import "github.com/mstrelkov/jewelstock/internal/models"

type Resource string

const (
	ResourcePrices    Resource = "prices"
	ResourceInventory Resource = "inventory"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

type rule struct {
	Resource Resource
	Action   Action
}

// policy is the full access table. Reads on both resources are open to
// every role; price writes are admin only, inventory writes are
// admin/manager.
var policy = map[rule]map[models.Role]struct{}{
	{ResourcePrices, ActionRead}: {
		models.RoleAdmin:       {},
		models.RoleManager:     {},
		models.RoleSalesperson: {},
	},
	{ResourcePrices, ActionWrite}: {
		models.RoleAdmin: {},
	},
	{ResourceInventory, ActionRead}: {
		models.RoleAdmin:       {},
		models.RoleManager:     {},
		models.RoleSalesperson: {},
	},
	{ResourceInventory, ActionWrite}: {
		models.RoleAdmin:   {},
		models.RoleManager: {},
	},
}

func Allowed(role models.Role, resource Resource, action Action) bool {
	roles, ok := policy[rule{resource, action}]
	if !ok {
		return false
	}
	_, ok = roles[role]
	return ok
}
