package waveform

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/siliclab/uartsim/transmitter"
)

// CSVWriter stores waveform samples in a CSV file.
type CSVWriter struct {
	path string
	file *os.File

	samples    []transmitter.Sample
	bufferSize int
}

// NewCSVWriter creates a CSVWriter that writes to path + ".csv". An empty
// path generates a unique name.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the output file. A pre-existing file is an error: waveforms
// from different runs must never be mixed.
func (w *CSVWriter) Init() {
	if w.path == "" {
		w.path = "uartsim_wave_" + xid.New().String()
	}

	filename := w.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "Cycle, Time, State, TxOut, Busy\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Write buffers one sample.
func (w *CSVWriter) Write(s transmitter.Sample) {
	w.samples = append(w.samples, s)
	if len(w.samples) >= w.bufferSize {
		w.Flush()
	}
}

// Flush writes the buffered samples to the file.
func (w *CSVWriter) Flush() {
	for _, s := range w.samples {
		fmt.Fprintf(w.file, "%d, %.10f, %s, %d, %d\n",
			s.Cycle,
			s.Time,
			s.State,
			boolToBit(s.TxOut),
			boolToBit(s.Busy),
		)
	}

	w.samples = nil
}

func boolToBit(b bool) int {
	if b {
		return 1
	}

	return 0
}
