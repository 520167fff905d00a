package arena

import "time"

// Config holds the arena dimensions and the tunable rule constants
type Config struct {
	// Width is the arena width in world units
	Width float64

	// Height is the arena height in world units
	Height float64

	// PlayerSpeed is the player move speed in units per second
	PlayerSpeed float64

	// PlayerMaxHealth is the health cap and the starting health
	PlayerMaxHealth int

	// ContactDamage is the health lost per player-enemy collision
	ContactDamage int

	// KillReward is the score added per enemy destroyed
	KillReward int

	// BulletSpeed is the bullet speed in units per second
	BulletSpeed float64

	// FireCooldown is the minimum sim time between two shots (0 disables the cap)
	FireCooldown time.Duration

	// EnemySpawnPeriod is the fixed period of the enemy spawn trigger
	EnemySpawnPeriod time.Duration

	// DefaultEnemySpeed is used for enemies without an assigned type
	DefaultEnemySpeed float64

	// PotionHeal is the health restored by one potion
	PotionHeal int

	// PotionMargin is the distance kept from each edge when placing potions
	PotionMargin float64

	// PotionDelayMin and PotionDelayMax bound the potion inter-arrival time
	PotionDelayMin time.Duration
	PotionDelayMax time.Duration

	// PotionTimerIgnoresPause keeps the potion renewal timer running while paused
	PotionTimerIgnoresPause bool

	// DepthScaleMin is the render scale at y=height; y=0 gets
	// DepthScaleMin + DepthScaleRange
	DepthScaleMin   float64
	DepthScaleRange float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Width:             1280,
		Height:            960,
		PlayerSpeed:       200,
		PlayerMaxHealth:   100,
		ContactDamage:     20,
		KillReward:        10,
		BulletSpeed:       400,
		FireCooldown:      0, // uncapped
		EnemySpawnPeriod:  1000 * time.Millisecond,
		DefaultEnemySpeed: 100,
		PotionHeal:        30,
		PotionMargin:      40,
		PotionDelayMin:    5000 * time.Millisecond,
		PotionDelayMax:    10000 * time.Millisecond,
		DepthScaleMin:     0.7,
		DepthScaleRange:   0.6,
	}
}

// Entity sizes in world units (collision box and drawn rectangle)
const (
	PlayerW = 32.0
	PlayerH = 16.0
	EnemyW  = 28.0
	EnemyH  = 14.0
	BulletW = 8.0
	BulletH = 8.0
	PotionW = 20.0
	PotionH = 10.0
)
