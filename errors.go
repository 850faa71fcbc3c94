package preload

import "errors"

var (
	ErrEmptyName       = errors.New("preload.empty_name")
	ErrEmptyPath       = errors.New("preload.empty_path")
	ErrLazyScript      = errors.New("preload.lazy_script")
	ErrDuplicate       = errors.New("preload.duplicate")
	ErrFrozen          = errors.New("preload.registry_frozen")
	ErrUnknownKind     = errors.New("preload.unknown_kind")
	ErrInvalidManifest = errors.New("preload.invalid_manifest")
	ErrNilRegistry     = errors.New("preload.nil_registry")
	ErrInvalidName     = errors.New("preload.invalid_cookie_name")
)
