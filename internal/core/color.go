package core

// Color identifies a palette entry. Hosts map it to an ANSI color (terminal)
// or an RGBA value (window).
type Color uint8

// Palette used by the jump game.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorGround
	ColorObstacle
	ColorRunner
	ColorHUD
)

// RGBA returns the window color for c as 8-bit channels.
// The background is a 0.66 grey.
func (c Color) RGBA() (r, g, b, a uint8) {
	switch c {
	case ColorBackground:
		return 168, 168, 168, 255
	case ColorRunner:
		return 200, 30, 30, 255
	case ColorHUD:
		return 255, 255, 255, 255
	default:
		return 0, 0, 0, 255
	}
}
