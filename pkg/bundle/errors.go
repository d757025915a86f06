package bundle

import "errors"

var (
	ErrEmptyLocale     = errors.New("bundle: locale cannot be empty")
	ErrEmptyNamespace  = errors.New("bundle: namespace cannot be empty")
	ErrNilLoader       = errors.New("bundle: loader cannot be nil")
	ErrLoadFailed      = errors.New("bundle: load failed")
	ErrDecode          = errors.New("bundle: cannot decode bundle")
	ErrBadStatus       = errors.New("bundle: unexpected response status")
	ErrInvalidConfig   = errors.New("bundle: invalid configuration")
	ErrInvalidSchedule = errors.New("bundle: invalid refresh schedule")
	ErrAlreadyStarted  = errors.New("bundle: refresher already started")
	ErrNotStarted      = errors.New("bundle: refresher not started")
	ErrSetDialect      = errors.New("bundle migrator: failed to set dialect")
	ErrApplyMigrations = errors.New("bundle migrator: failed to apply migrations")
)
