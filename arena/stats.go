package arena

import "time"

// Stats records what happened during one session
type Stats struct {
	Frames           int64         // Frames simulated while playing
	PlayTime         time.Duration // Simulated time spent playing
	ShotsFired       int64
	ShotsBlocked     int64 // Fire actions dropped by the cooldown
	EnemiesSpawned   int64
	EnemiesKilled    int64
	KillsByType      map[string]int64
	PotionsSpawned   int64
	PotionsCollected int64
	DamageTaken      int64
	HealingReceived  int64
}

func (s *Stats) recordKill(e *Entity) {
	s.EnemiesKilled++
	if s.KillsByType == nil {
		s.KillsByType = make(map[string]int64)
	}
	name := "untyped"
	if e.Type != nil {
		name = e.Type.Name
	}
	s.KillsByType[name]++
}

// Snapshot returns the counters as a flat map, for logging and display
func (s Stats) Snapshot() map[string]any {
	var accuracy float64
	if s.ShotsFired > 0 {
		accuracy = float64(s.EnemiesKilled) / float64(s.ShotsFired)
	}
	out := map[string]any{
		"frames":            s.Frames,
		"play_time_s":       s.PlayTime.Seconds(),
		"shots_fired":       s.ShotsFired,
		"shots_blocked":     s.ShotsBlocked,
		"enemies_spawned":   s.EnemiesSpawned,
		"enemies_killed":    s.EnemiesKilled,
		"potions_spawned":   s.PotionsSpawned,
		"potions_collected": s.PotionsCollected,
		"damage_taken":      s.DamageTaken,
		"healing_received":  s.HealingReceived,
		"kills_per_shot":    accuracy,
	}
	for name, n := range s.KillsByType {
		out["killed_"+name] = n
	}
	return out
}
