package locale

import "errors"

var (
	// ErrInvalidLocale is returned when a requested locale is not in the
	// supported set.
	ErrInvalidLocale = errors.New("locale: unsupported locale")

	// ErrNoSupportedLocales is returned when a manager is created without
	// any supported locales.
	ErrNoSupportedLocales = errors.New("locale: at least one supported locale is required")
)
