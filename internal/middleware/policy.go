// Package middleware provides HTTP middleware for the task manager.
package middleware

// Operation identifies an API operation for policy lookup.
type Operation string

// API operations.
const (
	OpAccountCreate Operation = "account.create"
	OpTokenObtain   Operation = "token.obtain"
	OpTokenRefresh  Operation = "token.refresh"
	OpTokenLogout   Operation = "token.logout"
	OpTaskList      Operation = "task.list"
	OpTaskCreate    Operation = "task.create"
	OpTaskRetrieve  Operation = "task.retrieve"
	OpTaskUpdate    Operation = "task.update"
	OpTaskDelete    Operation = "task.delete"
)

// AuthLevel is the authentication requirement of an operation.
type AuthLevel int

const (
	// AuthNone allows anonymous callers.
	AuthNone AuthLevel = iota
	// AuthRequired demands a valid access token.
	AuthRequired
)

// policies maps every operation to its required auth level. Evaluated
// before dispatch; an operation missing from the table is treated as
// AuthRequired.
var policies = map[Operation]AuthLevel{
	OpAccountCreate: AuthNone,
	OpTokenObtain:   AuthNone,
	OpTokenRefresh:  AuthNone,
	OpTokenLogout:   AuthRequired,
	OpTaskList:      AuthRequired,
	OpTaskCreate:    AuthRequired,
	OpTaskRetrieve:  AuthRequired,
	OpTaskUpdate:    AuthRequired,
	OpTaskDelete:    AuthRequired,
}

// RequiredAuth returns the auth level for an operation, defaulting to
// AuthRequired for unknown operations.
func RequiredAuth(op Operation) AuthLevel {
	level, ok := policies[op]
	if !ok {
		return AuthRequired
	}
	return level
}
