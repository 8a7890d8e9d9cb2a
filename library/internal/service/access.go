package service

import (
	"github.com/Randazzz/LibraryAPI/library/internal/errs"
	"github.com/Randazzz/LibraryAPI/library/internal/model"
)

// AdminRequired passes callers whose role is admin.
func AdminRequired(id model.Identity) error {
	if id.Role != model.RoleAdmin {
		return errs.ErrPermissionDeniedAccess
	}
	return nil
}

// SuperuserRequired passes callers with the superuser flag, regardless of role.
func SuperuserRequired(id model.Identity) error {
	if !id.IsSuperuser {
		return errs.ErrPermissionDeniedAccess
	}
	return nil
}
