package sim

// TimeTeller can be used to get the current time of a simulation.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler can be used to schedule future events.
type EventScheduler interface {
	Schedule(e Event)
}

// A SimulationEndHandler performs an action after the simulation ends.
type SimulationEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine drives a discrete-event simulation forward.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run processes all the scheduled events until none is left.
	Run() error

	// Pause stops the engine from triggering more events until Continue is
	// called.
	Pause()

	// Continue resumes a paused engine.
	Continue()

	// RegisterSimulationEndHandler registers a handler to be invoked after
	// the simulation is finished.
	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished invokes all the registered SimulationEndHandlers.
	Finished()
}
