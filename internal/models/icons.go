package models

import "image"

// Grid describes a source grid image split into Cols x Rows equal cells
type Grid struct {
	Name   string
	Source string
	Cols   int
	Rows   int
	Cells  []string // output filenames, row-major
}

// CellCount returns the number of cells in the grid
func (g Grid) CellCount() int {
	return g.Cols * g.Rows
}

// ExtractResult describes one icon written by the extractor
type ExtractResult struct {
	Grid   string
	Name   string
	Path   string
	Bounds image.Rectangle // region of the source image
}
