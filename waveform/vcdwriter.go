package waveform

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"github.com/siliclab/uartsim/transmitter"
)

// VCDWriter stores waveform samples as a value change dump, the interchange
// format waveform viewers read. No VCD library is used: the format is a
// small line protocol and the writer emits it directly.
type VCDWriter struct {
	path string
	file *os.File

	timescale   string
	started     bool
	lastTxOut   bool
	lastBusy    bool
	sampleCount int
}

const (
	vcdTxOutCode = "t"
	vcdBusyCode  = "b"
)

// NewVCDWriter creates a VCDWriter that writes to path + ".vcd". An empty
// path generates a unique name. The timescale should be the clock period,
// e.g. "1us" for a 1 MHz clock.
func NewVCDWriter(path string, timescale string) *VCDWriter {
	return &VCDWriter{
		path:      path,
		timescale: timescale,
	}
}

// Init creates the output file and writes the VCD header.
func (w *VCDWriter) Init() {
	if w.path == "" {
		w.path = "uartsim_wave_" + xid.New().String()
	}

	filename := w.path + ".vcd"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	w.file = file

	fmt.Fprintf(file, "$timescale %s $end\n", w.timescale)
	fmt.Fprintf(file, "$scope module transmitter $end\n")
	fmt.Fprintf(file, "$var wire 1 %s tx_out $end\n", vcdTxOutCode)
	fmt.Fprintf(file, "$var wire 1 %s busy $end\n", vcdBusyCode)
	fmt.Fprintf(file, "$upscope $end\n")
	fmt.Fprintf(file, "$enddefinitions $end\n")

	atexit.Register(func() {
		w.Flush()
		err := w.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// Write emits the value changes of one sample. Unchanged levels produce no
// output, per the dump format.
func (w *VCDWriter) Write(s transmitter.Sample) {
	changedTxOut := !w.started || s.TxOut != w.lastTxOut
	changedBusy := !w.started || s.Busy != w.lastBusy

	if changedTxOut || changedBusy {
		fmt.Fprintf(w.file, "#%d\n", s.Cycle)
	}
	if changedTxOut {
		fmt.Fprintf(w.file, "%d%s\n", boolToBit(s.TxOut), vcdTxOutCode)
	}
	if changedBusy {
		fmt.Fprintf(w.file, "%d%s\n", boolToBit(s.Busy), vcdBusyCode)
	}

	w.started = true
	w.lastTxOut = s.TxOut
	w.lastBusy = s.Busy
	w.sampleCount++
}

// Flush syncs the file. Writes are unbuffered, so there is nothing else to
// do.
func (w *VCDWriter) Flush() {
	err := w.file.Sync()
	if err != nil {
		panic(err)
	}
}
