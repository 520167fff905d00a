package game

// DebugState holds debug flags that persist across session restarts
type DebugState struct {
	ShowHitboxes bool // Outline collision boxes at their unscaled size
	ShowStats    bool // Session id, entity counts and TPS
}

// Global debug state instance (persists across restarts)
var globalDebugState = &DebugState{}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

// Toggle flips every debug overlay together
func (d *DebugState) Toggle() {
	on := !(d.ShowHitboxes || d.ShowStats)
	d.ShowHitboxes = on
	d.ShowStats = on
}
