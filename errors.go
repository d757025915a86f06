package g11n

import (
	"errors"

	"github.com/Apollo-Deploy/g11n/pkg/locale"
)

var (
	// ErrInvalidConfig indicates the configuration cannot produce a working
	// instance.
	ErrInvalidConfig = errors.New("g11n: invalid configuration")

	// ErrNilLoader is returned by New when neither a loader nor a prebuilt
	// bundle cache is provided.
	ErrNilLoader = errors.New("g11n: bundle loader is required")

	// ErrSuperseded is returned by SetLocale when a newer locale change
	// arrived while this one was still preloading. The newer change wins;
	// the superseded call made no state change.
	ErrSuperseded = errors.New("g11n: locale change superseded by a newer request")

	// ErrAlreadyInitialized is returned by Init on the second and later calls.
	ErrAlreadyInitialized = errors.New("g11n: already initialized")
)

// ErrInvalidLocale is returned by SetLocale when the requested locale is
// not in the supported set.
var ErrInvalidLocale = locale.ErrInvalidLocale
