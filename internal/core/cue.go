package core

// Cue is a one-shot presentation reaction (sound, flash) requested by a game.
// Games raise cues; the platform decides whether and how to play them.
type Cue uint8

const (
	CueNone Cue = iota
	CueHarvest
	CueShot
	CueEnemyDown
	CuePickup
	CuePlayerHit
	CueStart
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueHarvest:
		return "harvest"
	case CueShot:
		return "shot"
	case CueEnemyDown:
		return "enemy_down"
	case CuePickup:
		return "pickup"
	case CuePlayerHit:
		return "player_hit"
	case CueStart:
		return "start"
	default:
		return "none"
	}
}
