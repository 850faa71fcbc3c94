package assets

import "errors"

var (
	ErrEmptyPath       = errors.New("assets.empty_path")
	ErrInvalidBaseURL  = errors.New("assets.invalid_base_url")
	ErrInvalidManifest = errors.New("assets.invalid_manifest")
)
