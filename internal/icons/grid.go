package icons

import (
	"image"

	"github.com/thesavant42/iconkit/internal/models"
)

// Grid names
const (
	GridCybersecurity = "cybersecurity"
	GridNavigation    = "navigation"
)

// CybersecurityGrid is the 2x2 capability icon sheet
func CybersecurityGrid(source string) models.Grid {
	return models.Grid{
		Name:   GridCybersecurity,
		Source: source,
		Cols:   2,
		Rows:   2,
		Cells: []string{
			"cloud-security.png",         // top left
			"network-infrastructure.png", // top right
			"endpoint-security.png",      // bottom left
			"compliance-risk.png",        // bottom right
		},
	}
}

// NavigationGrid is the 3 column x 2 row navigation icon sheet
func NavigationGrid(source string) models.Grid {
	return models.Grid{
		Name:   GridNavigation,
		Source: source,
		Cols:   3,
		Rows:   2,
		Cells: []string{
			"solutions.png",
			"services.png",
			"resources.png",
			"about.png",
			"about-alt.png",
			"platform.png",
		},
	}
}

// DefaultGrids returns both layouts bound to their source images
func DefaultGrids(cyberSource, navSource string) []models.Grid {
	return []models.Grid{
		CybersecurityGrid(cyberSource),
		NavigationGrid(navSource),
	}
}

// CellRect returns the region of cell index within bounds. Cell sizes use
// integer division, so remainder pixels on the right and bottom edges
// belong to no cell.
func CellRect(bounds image.Rectangle, cols, rows, index int) image.Rectangle {
	cw := bounds.Dx() / cols
	ch := bounds.Dy() / rows
	x := bounds.Min.X + (index%cols)*cw
	y := bounds.Min.Y + (index/cols)*ch
	return image.Rect(x, y, x+cw, y+ch)
}
