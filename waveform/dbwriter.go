package waveform

import (
	"github.com/siliclab/uartsim/datarecording"
	"github.com/siliclab/uartsim/transmitter"
)

const waveformTable = "waveform"

// DBWriter stores waveform samples through a DataRecorder.
type DBWriter struct {
	recorder datarecording.DataRecorder
}

// NewDBWriter creates a DBWriter and creates the waveform table on the
// recorder.
func NewDBWriter(recorder datarecording.DataRecorder) *DBWriter {
	recorder.CreateTable(waveformTable, transmitter.Sample{})

	return &DBWriter{recorder: recorder}
}

// Write records one sample.
func (w *DBWriter) Write(s transmitter.Sample) {
	w.recorder.InsertData(waveformTable, s)
}

// Flush flushes the recorder.
func (w *DBWriter) Flush() {
	w.recorder.Flush()
}
