package game

import "github.com/vovakirdan/friday-breakfast/internal/core"

// DefaultCameraBias keeps the player about 65% of the way down the screen,
// leaving most of the view for the floor ahead.
const DefaultCameraBias = 0.65

// Camera maps the player's world y to the viewport offset.
// It has no smoothing: once clamped, the view moves exactly with the player.
type Camera struct {
	Bias float64 // fraction of the viewport height kept above the player
}

// Follow returns the camera offset for a player at playerY, clamped to
// [0, worldHeight-viewportHeight].
func (c Camera) Follow(playerY, viewportHeight, worldHeight float64) float64 {
	target := playerY - c.Bias*viewportHeight
	return core.ClampF(target, 0, max(0, worldHeight-viewportHeight))
}

// Follow is Camera.Follow with the default bias.
func Follow(playerY, viewportHeight, worldHeight float64) float64 {
	return Camera{Bias: DefaultCameraBias}.Follow(playerY, viewportHeight, worldHeight)
}
