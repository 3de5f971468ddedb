package service

import (
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminUser(t *testing.T, isAdmin bool) entity.User {
	t.Helper()
	email, err := entity.NewEmail("admin@example.com")
	require.NoError(t, err)

	return entity.User{
		ID:      entity.UserID(1),
		Name:    "Admin",
		Email:   email,
		IsAdmin: isAdmin,
	}
}

func TestAdminService_CanDemoteFromAdmin(t *testing.T) {
	svc := NewAdminService()

	assert.NoError(t, svc.CanDemoteFromAdmin(adminUser(t, true), 2))
}

func TestAdminService_CanDemoteFromAdmin_LastAdmin(t *testing.T) {
	svc := NewAdminService()

	err := svc.CanDemoteFromAdmin(adminUser(t, true), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLastAdmin)
}

func TestAdminService_CanDemoteFromAdmin_NotAdmin(t *testing.T) {
	svc := NewAdminService()

	err := svc.CanDemoteFromAdmin(adminUser(t, false), 5)

	assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
}
