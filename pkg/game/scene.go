package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents an editor scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	// A non-nil error terminates the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}
