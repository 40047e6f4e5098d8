package game

import "math/rand"

// RandomTerrain picks one of the four kinds uniformly.
func RandomTerrain(rng *rand.Rand) Terrain {
	return Terrain(rng.Intn(int(terrainCount)))
}

// CreateGameTiles builds one tile per coordinate of a rows x columns board,
// each with a random kind.
func CreateGameTiles(rows, columns int, rng *rand.Rand) []TerrainTile {
	tiles := make([]TerrainTile, 0, rows*columns)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			tiles = append(tiles, TerrainTile{
				Coord: Coord{X: x, Y: y},
				Kind:  RandomTerrain(rng),
			})
		}
	}
	return tiles
}
