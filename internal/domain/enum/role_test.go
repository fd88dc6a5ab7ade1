package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{
		"owner":       RoleOwner,
		"Owner":       RoleOwner,
		"ADMIN":       RoleOwner,
		"super-admin": RoleOwner,
		" owner ":     RoleOwner,
		"staff":       RoleStaff,
		"Employee":    RoleStaff,
		"user":        RoleStaff,
		"":            RoleStaff,
		"manager":     RoleStaff,
	}

	for raw, want := range cases {
		require.Equal(t, want, ParseRole(raw), "raw=%q", raw)
	}
}

func TestRoleIsValid(t *testing.T) {
	require.True(t, RoleOwner.IsValid())
	require.True(t, RoleStaff.IsValid())
	require.False(t, Role("Admin").IsValid())
}
