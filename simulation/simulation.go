package simulation

import (
	"github.com/siliclab/uartsim/datarecording"
	"github.com/siliclab/uartsim/monitoring"
	"github.com/siliclab/uartsim/sim"
)

// A Simulation owns the services a testbench needs: the engine, the data
// recorder, the optional monitor, and the registries of components and
// signals.
type Simulation struct {
	id string

	engine       sim.Engine
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	components      []sim.Component
	compNameIndex   map[string]int
	signals         []sim.Named
	signalNameIndex map[string]int
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine of the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder of the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor of the simulation, nil when monitoring is
// disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// RegisterComponent registers a component with the simulation.
func (s *Simulation) RegisterComponent(c sim.Component) {
	name := c.Name()
	if _, found := s.compNameIndex[name]; found {
		panic("component " + name + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[name] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}
}

// RegisterSignal registers a wire or bus with the simulation.
func (s *Simulation) RegisterSignal(n sim.Named) {
	name := n.Name()
	if _, found := s.signalNameIndex[name]; found {
		panic("signal " + name + " already registered")
	}

	s.signals = append(s.signals, n)
	s.signalNameIndex[name] = len(s.signals) - 1
}

// GetComponentByName returns the component with the given name.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	return s.components[s.compNameIndex[name]]
}

// GetSignalByName returns the signal with the given name.
func (s *Simulation) GetSignalByName(name string) sim.Named {
	return s.signals[s.signalNameIndex[name]]
}

// Terminate flushes and closes the services of the simulation.
func (s *Simulation) Terminate() {
	s.dataRecorder.Close()
}
