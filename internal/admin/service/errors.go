package service

import "errors"

// Sentinel errors shared by the admin services. Transports map these onto
// their own status codes; everything else is treated as an internal failure.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflict         = errors.New("conflict")
)
