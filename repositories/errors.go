package repositories

import "errors"

// Failure taxonomy of the catalog core. All of these are recoverable by the
// caller; controllers map them onto HTTP statuses.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidParent    = errors.New("invalid parent line")
	ErrMenuNotEditable  = errors.New("menu is not editable")
	ErrMenuNotPublished = errors.New("menu is not published")
	ErrConflict         = errors.New("conflict")
)
