package layout

import "math"

// Vec3 is a position in the gallery's 3D scene. The grid lies on the XZ
// plane; Y stays 0 for flat tiles.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Grid describes the tile layout: a square grid on the XZ plane, centered
// on the origin, sized to hold every currently discovered image.
type Grid struct {
	Spacing  float64 // center-to-center distance between adjacent tiles
	TileSize float64 // edge length of a tile quad
}

// DefaultGrid matches the reference gallery layout.
func DefaultGrid() Grid {
	return Grid{Spacing: 2.5, TileSize: 2.0}
}

// Size returns the edge length (in tiles) of the smallest square grid that
// holds total tiles: ceil(sqrt(total)). Zero for an empty gallery.
func Size(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(math.Sqrt(float64(total))))
}

// Position returns the world position for the tile at the given index within
// a grid of gridSize columns. Index order is row-major: row = index/gridSize,
// col = index%gridSize. The grid is centered on the origin, so the tile at
// index 0 sits at (-offset, 0, -offset) where offset = (gridSize-1)*spacing/2.
// Pure function: identical inputs always produce the identical position.
func (g Grid) Position(index int, gridSize int) Vec3 {
	if gridSize <= 0 {
		return Vec3{}
	}
	row := index / gridSize
	col := index % gridSize

	offset := float64(gridSize-1) * g.Spacing / 2

	return Vec3{
		X: float64(col)*g.Spacing - offset,
		Y: 0,
		Z: float64(row)*g.Spacing - offset,
	}
}
