package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Stepper advances a grid by exactly one generation and commits it.
type Stepper interface {
	Step(g *GridBuffer)
}

// Drawer advances and renders one frame.
type Drawer interface {
	Draw()
}

// DrawerFunc adapts a plain function to the Drawer interface.
type DrawerFunc func()

// Draw calls f.
func (f DrawerFunc) Draw() { f() }
