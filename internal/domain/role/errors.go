package role

import "errors"

var (
	ErrRoleNotFound   = errors.New("role not found")
	ErrRoleNameExists = errors.New("role name already exists")
	ErrRoleInUse      = errors.New("role is referenced by active employees")
)
