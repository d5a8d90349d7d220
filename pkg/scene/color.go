package scene

// Color is an RGB triple with components in [0, 1].
type Color struct {
	R, G, B float32
}

// RGB returns a color from components in [0, 1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}
