package sim

// HookPos defines a position in the simulation where hooks can be invoked.
type HookPos struct {
	Name string
}

// HookPosBeforeEvent triggers before an event is handled.
var HookPosBeforeEvent = &HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent triggers after an event is handled.
var HookPosAfterEvent = &HookPos{Name: "AfterEvent"}

// HookCtx carries the information about the site where a hook is invoked.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
	Detail any
}

// A Hook is a piece of program that can be invoked by a Hookable.
type Hook interface {
	Func(ctx HookCtx)
}

// Hookable is an object that accepts hooks.
type Hookable interface {
	AcceptHook(hook Hook)
}

// HookableBase implements the Hookable interface and can be embedded by
// types that invoke hooks.
type HookableBase struct {
	Hooks []Hook
}

// NewHookableBase creates a new HookableBase.
func NewHookableBase() *HookableBase {
	return &HookableBase{}
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook triggers all the registered hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}

// NumHooks returns the number of registered hooks.
func (h *HookableBase) NumHooks() int {
	return len(h.Hooks)
}
