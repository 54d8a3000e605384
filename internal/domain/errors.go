package domain

import "errors"

var (
	ErrItemNotFound        = errors.New("line item not found")
	ErrUnknownField        = errors.New("unknown record field")
	ErrUnknownBasis        = errors.New("unknown charging basis")
	ErrUnsupportedLogoType = errors.New("unsupported logo image type")
	ErrLogoTooLarge        = errors.New("logo exceeds maximum allowed size")
	ErrRenderFailed        = errors.New("preview render failed")
)
