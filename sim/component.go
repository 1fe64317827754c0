package sim

// A Named object carries a name that identifies it in a simulation.
type Named interface {
	Name() string
}

// A Component is a hardware unit under simulation.
type Component interface {
	Named
	Handler
	Hookable
}

// ComponentBase provides the functions that all components share.
type ComponentBase struct {
	HookableBase
	name string
}

// NewComponentBase creates a new ComponentBase.
func NewComponentBase(name string) *ComponentBase {
	c := new(ComponentBase)
	c.name = name

	return c
}

// Name returns the name of the component.
func (c *ComponentBase) Name() string {
	return c.name
}
