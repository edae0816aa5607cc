package guard

import (
	"errors"
	"fmt"

	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
)

// RequireAdmin loads the admin record and checks caller is its authority.
// A missing admin record is reported as ErrAdminRequired.
func RequireAdmin(repo domain.AdminRepository, caller domain.Address) (*domain.Admin, error) {
	admin, err := repo.GetAdmin()
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("admin not initialized: %w", domain.ErrAdminRequired)
		}
		return nil, err
	}
	if !admin.IsAuthority(caller) {
		return nil, fmt.Errorf("caller %s: %w", caller, domain.ErrAdminRequired)
	}
	return admin, nil
}

// IsAdmin reports whether caller is the current admin authority.
func IsAdmin(repo domain.AdminRepository, caller domain.Address) (bool, error) {
	admin, err := repo.GetAdmin()
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return admin.IsAuthority(caller), nil
}
