package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/siliclab/uartsim/receiver"
	"github.com/siliclab/uartsim/sim"
	"github.com/siliclab/uartsim/simulation"
	"github.com/siliclab/uartsim/stimulus"
	"github.com/siliclab/uartsim/transmitter"
	"github.com/siliclab/uartsim/waveform"
)

var transmitFlags = struct {
	data        string
	width       int
	parity      string
	baud        int
	csvPath     string
	vcdPath     string
	dbPath      string
	monitor     bool
	monitorPort int
	openBrowser bool
}{}

var transmitCmd = &cobra.Command{
	Use:   "transmit",
	Short: "Transmit a list of data words and decode them back",
	Run: func(cmd *cobra.Command, args []string) {
		runTransmit()
	},
}

func init() {
	f := transmitCmd.Flags()

	f.StringVar(&transmitFlags.data, "data", "",
		"comma-separated hex words to transmit, e.g. A5,3C")
	f.IntVar(&transmitFlags.width, "width", 8,
		"data word width in bits, in [1, 64]")
	f.StringVar(&transmitFlags.parity, "parity", "even",
		"parity policy: none, even, or odd")
	f.IntVar(&transmitFlags.baud, "baud", 1000000,
		"line rate in bits per second")
	f.StringVar(&transmitFlags.csvPath, "csv", "",
		"write the waveform to this CSV file")
	f.StringVar(&transmitFlags.vcdPath, "vcd", "",
		"write the waveform to this VCD file")
	f.StringVar(&transmitFlags.dbPath, "db", "",
		"record the waveform into this SQLite database")
	f.BoolVar(&transmitFlags.monitor, "monitor", false,
		"serve the monitoring API while the simulation runs")
	f.IntVar(&transmitFlags.monitorPort, "monitor-port", 0,
		"port of the monitoring server, 0 picks a random port")
	f.BoolVar(&transmitFlags.openBrowser, "open-browser", false,
		"open the monitoring URL in a browser")

	err := transmitCmd.MarkFlagRequired("data")
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(transmitCmd)
}

func runTransmit() {
	words := parseWords(transmitFlags.data)
	parity := parseParity(transmitFlags.parity)
	freq := sim.Freq(transmitFlags.baud) * sim.Hz

	s := buildSimulation()
	defer s.Terminate()

	engine := s.GetEngine()

	tx := transmitter.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithWidth(transmitFlags.width).
		WithParity(parity).
		Build("Tx")
	rx := receiver.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithWidth(transmitFlags.width).
		WithParity(parity).
		WithLine(tx.TxOut).
		Build("Rx")
	feeder := stimulus.MakeBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithTransmitter(tx).
		Build("Feeder")

	s.RegisterComponent(tx)
	s.RegisterComponent(rx)
	s.RegisterComponent(feeder)
	s.RegisterSignal(tx.TxOut)
	s.RegisterSignal(tx.Busy)

	tracer := attachTracers(s, tx)

	if transmitFlags.openBrowser && s.GetMonitor() != nil {
		err := browser.OpenURL(s.GetMonitor().URL())
		if err != nil {
			fmt.Println("failed to open browser:", err)
		}
	}

	feeder.Feed(words...)

	err := engine.Run()
	if err != nil {
		atexit.Fatalf("simulation failed: %v", err)
	}

	if tracer != nil {
		tracer.Flush()
	}

	reportWords(rx.Words())
}

func buildSimulation() *simulation.Simulation {
	builder := simulation.MakeBuilder()

	if transmitFlags.monitor {
		port := transmitFlags.monitorPort
		if port == 0 {
			port, _ = strconv.Atoi(envOrDefault("UARTSIM_MONITOR_PORT", "0"))
		}
		if port != 0 {
			builder = builder.WithMonitorPort(port)
		}
	} else {
		builder = builder.WithoutMonitoring()
	}

	if transmitFlags.dbPath != "" {
		builder = builder.WithOutputFileName(transmitFlags.dbPath)
	}

	return builder.Build()
}

func attachTracers(
	s *simulation.Simulation,
	tx *transmitter.Comp,
) *waveform.Tracer {
	writers := []waveform.Writer{}

	if transmitFlags.csvPath != "" {
		w := waveform.NewCSVWriter(transmitFlags.csvPath)
		w.Init()
		writers = append(writers, w)
	}

	if transmitFlags.vcdPath != "" {
		period := 1000000000 / transmitFlags.baud
		w := waveform.NewVCDWriter(
			transmitFlags.vcdPath, fmt.Sprintf("%dns", period))
		w.Init()
		writers = append(writers, w)
	}

	if transmitFlags.dbPath != "" {
		writers = append(writers, waveform.NewDBWriter(s.GetDataRecorder()))
	}

	if len(writers) == 0 {
		return nil
	}

	tracer := waveform.NewTracer(writers...)
	tx.AcceptHook(tracer)

	return tracer
}

func parseWords(data string) []uint64 {
	parts := strings.Split(data, ",")
	words := make([]uint64, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimPrefix(strings.TrimSpace(p), "0x")

		w, err := strconv.ParseUint(p, 16, 64)
		if err != nil {
			atexit.Fatalf("invalid data word %q: %v", p, err)
		}

		words = append(words, w)
	}

	return words
}

func parseParity(name string) transmitter.Parity {
	switch strings.ToLower(name) {
	case "none":
		return transmitter.ParityNone
	case "even":
		return transmitter.ParityEven
	case "odd":
		return transmitter.ParityOdd
	}

	atexit.Fatalf("unknown parity %q, want none, even, or odd", name)

	return transmitter.ParityNone
}

func reportWords(words []receiver.Word) {
	fmt.Printf("Decoded %d word(s):\n", len(words))

	for i, w := range words {
		status := "ok"
		if w.ParityError {
			status = "parity error"
		}
		if w.FramingError {
			status = "framing error"
		}

		fmt.Printf("  [%d] 0x%X (%s)\n", i, w.Value, status)
	}
}
