package raster

import "errors"

// Sentinel errors for raster operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("raster: cell size must be strictly positive")
	// ErrBadValues indicates the backing value slice does not match Nx×Ny.
	ErrBadValues = errors.New("raster: value slice length must equal Nx*Ny")
	// ErrOutOfExtent indicates a query point outside the grid bounding box.
	ErrOutOfExtent = errors.New("raster: point outside grid extent")
	// ErrNoData indicates sampling touched a no-data (NaN) cell.
	ErrNoData = errors.New("raster: sample touches no-data cells")
	// ErrMisaligned indicates two grids do not share origin, cell size and extent.
	ErrMisaligned = errors.New("raster: grids are not co-registered")
)
