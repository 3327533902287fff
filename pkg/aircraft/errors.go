package aircraft

import "errors"

var (
	// ErrUnsupportedVariant is returned for aircraft without a populated
	// profile.
	ErrUnsupportedVariant = errors.New("unsupported aircraft variant")

	// ErrAssetUnavailable is returned when the aircraft's sprite cannot be
	// loaded.
	ErrAssetUnavailable = errors.New("aircraft asset unavailable")
)
