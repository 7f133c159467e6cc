// Package authz derives action permissions from the role claims carried by
// the access token. Evaluation is pure: no I/O, no session access, and a
// nil role set simply grants nothing.
package authz

// Role identifiers with special meaning to the evaluator. Any other role
// string may appear in a claim set; it grants no permission here.
const (
	RoleProjectManagers   = "Project_Workflow_Project_Managers"
	RoleOperationsManager = "Operations_Manager"
)

// Permissions is the closed set of action gates the client checks. It is
// computed once per session from the raw claims, not re-derived per check.
type Permissions struct {
	CanCreateProject bool
	CanCompleteTask  bool
}

// Evaluate maps a role claim set to Permissions.
func Evaluate(roles []string) Permissions {
	return Permissions{
		CanCreateProject: hasRole(roles, RoleProjectManagers),
		CanCompleteTask:  hasRole(roles, RoleOperationsManager),
	}
}

func hasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
