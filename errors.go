package raster2d

import "errors"

// Errors returned by the Context constructors. See §4.7 and §7.
var (
	ErrNoPixels           = errors.New("raster2d: bitmap has no pixel storage")
	ErrInvalidDimensions  = errors.New("raster2d: width and height must be positive")
	ErrRowBytesTooSmall   = errors.New("raster2d: rowBytes is smaller than width*4")
	ErrRowBytesMisaligned = errors.New("raster2d: rowBytes is not a multiple of 4")
)
