package renderer

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Tile is a rectangular block of pixels rendered as one unit of work
type Tile struct {
	ID     int             // Index into the tile grid
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	tileSize = max(1, tileSize)

	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// renderTiles calls renderTile for every tile with at most workers calls in
// flight. It returns the first error encountered; tiles not yet started when
// an error occurs are skipped.
func renderTiles(tiles []*Tile, workers int, renderTile func(*Tile) error) error {
	if workers <= 1 {
		for _, tile := range tiles {
			if err := renderTile(tile); err != nil {
				return fmt.Errorf("while rendering tile %d: %w", tile.ID, err)
			}
		}
		return nil
	}

	// Use errgroup and semaphore to limit concurrency.
	eg, ctx := errgroup.WithContext(context.Background())
	sem := semaphore.NewWeighted(int64(workers))

	for _, tile := range tiles {
		tile := tile

		// Acquire only fails once an earlier tile has failed and cancelled ctx
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := renderTile(tile); err != nil {
				return fmt.Errorf("while rendering tile %d: %w", tile.ID, err)
			}
			return nil
		})
	}

	return eg.Wait()
}
