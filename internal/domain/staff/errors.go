package staff

import "errors"

var (
	ErrInvalidToken          = errors.New("invalid or missing token")
	ErrStaffClaimMissing     = errors.New("staff_id claim is missing or invalid")
	ErrManagerAccessRequired = errors.New("manager access required")
)
