package types

import "github.com/m-mizutani/goerr/v2"

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Validate checks if the Role is a known value
func (r Role) Validate() error {
	switch r {
	case RoleUser, RoleAssistant:
		return nil
	}
	return goerr.New("invalid role", goerr.V("role", r))
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}
