package config

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 598
	WindowHeight = 676
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}
