// Package simulation assembles the engine, the data recorder, and the
// optional monitor into one Simulation object that owns the component and
// signal registries.
package simulation

import (
	"github.com/rs/xid"

	"github.com/siliclab/uartsim/datarecording"
	"github.com/siliclab/uartsim/monitoring"
	"github.com/siliclab/uartsim/sim"
)

// Builder builds simulations.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	outputFileName string
}

// MakeBuilder creates a new Builder. Monitoring is on by default.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring disables the monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port of the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the name of the recording database.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	s := &Simulation{
		compNameIndex:   make(map[string]int),
		signalNameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "uartsim_" + s.id
	}
	s.dataRecorder = datarecording.NewDataRecorder(outputPath)

	s.engine = sim.NewSerialEngine()

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.StartServer()
	}

	return s
}
