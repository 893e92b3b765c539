package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrNotFound indicates the requested asset does not exist.
	ErrNotFound = errors.New("asset not found")

	// ErrInvalidName indicates the asset name contains path separators or dots.
	ErrInvalidName = errors.New("invalid asset name")

	// ErrInvalidBasePath indicates the custom asset directory cannot be opened.
	ErrInvalidBasePath = errors.New("invalid base path")

	// ErrAssetRead indicates an I/O error, including reads that would leave
	// the base path.
	ErrAssetRead = errors.New("failed to read asset")
)
