package arena

import (
	"image/color"
	"math/rand"
)

// EnemyType defines the stats and look of an enemy
type EnemyType struct {
	Name   string
	Speed  float64
	Health int
	Color  color.RGBA
}

// EnemyTypes is the fixed palette enemies are drawn from
var EnemyTypes = []EnemyType{
	{Name: "slow", Speed: 80, Health: 1, Color: color.RGBA{0xff, 0x33, 0x33, 0xff}},  // red, weak
	{Name: "medium", Speed: 120, Health: 2, Color: color.RGBA{0x33, 0xff, 0x33, 0xff}}, // green
	{Name: "fast", Speed: 160, Health: 3, Color: color.RGBA{0x33, 0x33, 0xff, 0xff}},   // blue, tough
}

// RandomEnemyType returns a palette entry chosen uniformly at random
func RandomEnemyType(rng *rand.Rand) *EnemyType {
	return &EnemyTypes[rng.Intn(len(EnemyTypes))]
}
