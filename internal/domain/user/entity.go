package user

import (
	"fmt"
	"strings"

	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

const EntityName = "User"

// Patch holds the fields a user update may change. Nil means untouched.
type Patch struct {
	Name  *string
	Email *string
	Role  *string
}

func (p Patch) Fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Role != nil {
		fields["role"] = *p.Role
	}
	return fields
}

func ValidRole(role string) bool {
	return role == models.RoleUser || role == models.RoleAdmin
}

// NormalizeRole upper-cases the role and falls back to USER when blank.
func NormalizeRole(role string) (string, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		return models.RoleUser, nil
	}
	if !ValidRole(role) {
		return "", httperr.ErrBadRequest("invalid_role", fmt.Sprintf("Role %s is not supported.", role))
	}
	return role, nil
}

func ErrAlreadyExists() error {
	return httperr.ErrConflict("user_already_exists", "User with provided email and name already exists.")
}

func DeletedNotice(name string) string {
	return fmt.Sprintf("%s has been deleted.", name)
}

func DeletedSuccess(name string) string {
	return fmt.Sprintf("User: %s deleted successfully.", name)
}
