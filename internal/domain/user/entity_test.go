package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cocktails-rolodex/cocktails-api/internal/httperr"
	"github.com/cocktails-rolodex/cocktails-api/internal/models"
)

func TestNormalizeRole(t *testing.T) {
	t.Parallel()

	role, err := NormalizeRole("")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	role, err = NormalizeRole(" admin ")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	_, err = NormalizeRole("bartender")
	assert.Equal(t, httperr.ErrBadRequest("invalid_role", "Role BARTENDER is not supported."), err)
}

func TestPatchFields(t *testing.T) {
	t.Parallel()

	name := "Bill"
	assert.Equal(t, map[string]any{"name": "Bill"}, Patch{Name: &name}.Fields())
	assert.Empty(t, Patch{}.Fields())
}

func TestMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ana has been deleted.", DeletedNotice("Ana"))
	assert.Equal(t, "User: Ana deleted successfully.", DeletedSuccess("Ana"))
	assert.EqualError(t, ErrAlreadyExists(), "User with provided email and name already exists.")
}
