package service

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// AdminService enforces account administration rules.
type AdminService struct{}

// NewAdminService is the constructor for AdminService.
func NewAdminService() *AdminService {
	return &AdminService{}
}

// CanDemoteFromAdmin checks the last-one-standing rule: the user must be an
// administrator and must not be the only one left. This is a read-then-decide
// check; the persistence port's conditional update is what actually closes
// the race at demotion time.
func (s *AdminService) CanDemoteFromAdmin(user entity.User, adminCount int64) error {
	if !user.IsAdmin {
		return domainerrors.ErrNotAdmin
	}
	if adminCount <= 1 {
		return domainerrors.ErrLastAdmin
	}

	return nil
}
