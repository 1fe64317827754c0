// Package monitoring turns a running simulation into a small HTTP server,
// so the engine can be paused, resumed, and inspected from outside the
// process. The server speaks JSON only; dashboards live elsewhere.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"sync"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/siliclab/uartsim/sim"
)

// Monitor exposes a simulation over HTTP for external control and
// inspection.
type Monitor struct {
	engine     sim.Engine
	components []sim.Component
	portNumber int
	url        string

	progressBarsLock sync.Mutex
	progressBars     []*ProgressBar
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitoring server. Ports below
// 1000 are rejected and replaced with a random port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the monitoring server. "+
				"Using a random port instead.\n", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine that drives the simulation.
func (m *Monitor) RegisterEngine(e sim.Engine) {
	m.engine = e
}

// RegisterComponent registers a component to be monitored.
func (m *Monitor) RegisterComponent(c sim.Component) {
	m.components = append(m.components, c)
}

// URL returns the address of the running monitoring server.
func (m *Monitor) URL() string {
	return m.url
}

// StartServer starts the monitoring server in the background.
func (m *Monitor) StartServer() {
	r := mux.NewRouter()
	r.HandleFunc("/api/pause", m.pauseEngine)
	r.HandleFunc("/api/continue", m.continueEngine)
	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/run", m.run)
	r.HandleFunc("/api/tick/{name}", m.tick)
	r.HandleFunc("/api/list_components", m.listComponents)
	r.HandleFunc("/api/component/{name}", m.listComponentDetails)
	r.HandleFunc("/api/progress", m.listProgressBars)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	port := listener.Addr().(*net.TCPAddr).Port
	m.url = fmt.Sprintf("http://localhost:%d", port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", m.url)

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()
}

func (m *Monitor) pauseEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueEngine(w http.ResponseWriter, _ *http.Request) {
	m.engine.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%.10f}", m.engine.CurrentTime())
}

func (m *Monitor) run(_ http.ResponseWriter, _ *http.Request) {
	go func() {
		err := m.engine.Run()
		dieOnErr(err)
	}()
}

type tickingComponent interface {
	TickLater()
}

func (m *Monitor) tick(w http.ResponseWriter, r *http.Request) {
	compName := mux.Vars(r)["name"]

	comp := m.findComponentOr404(w, compName)
	if comp == nil {
		return
	}

	tickingComp, ok := comp.(tickingComponent)
	if !ok {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	tickingComp.TickLater()
	w.WriteHeader(http.StatusOK)
}

func (m *Monitor) listComponents(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, 0, len(m.components))
	for _, c := range m.components {
		names = append(names, c.Name())
	}

	rsp, err := json.Marshal(names)
	dieOnErr(err)

	_, err = w.Write(rsp)
	dieOnErr(err)
}

func (m *Monitor) listComponentDetails(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	component := m.findComponentOr404(w, name)
	if component == nil {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(component)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) listProgressBars(w http.ResponseWriter, _ *http.Request) {
	m.progressBarsLock.Lock()
	defer m.progressBarsLock.Unlock()

	rsp, err := json.Marshal(m.progressBars)
	dieOnErr(err)

	_, err = w.Write(rsp)
	dieOnErr(err)
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	fmt.Fprintf(w, "{\"cpu_percent\":%.2f,\"memory_rss\":%d}",
		cpuPercent, memInfo.RSS)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := &bytes.Buffer{}

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(1 * time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.Parse(buf)
	dieOnErr(err)

	fmt.Fprintf(w, "{\"num_samples\":%d,\"duration_nanos\":%d}",
		len(prof.Sample), prof.DurationNanos)
}

func (m *Monitor) findComponentOr404(
	w http.ResponseWriter,
	name string,
) sim.Component {
	for _, c := range m.components {
		if c.Name() == name {
			return c
		}
	}

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte("Component not found"))
	dieOnErr(err)

	return nil
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
