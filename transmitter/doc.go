// Package transmitter implements the behavioral model of a serial
// transmitter core. The core frames one data word with a start bit, an
// optional parity bit, and a stop bit, and shifts the frame out one level
// per clock cycle.
//
// The core is a single sequential circuit: a transmit controller FSM that
// drives a shift datapath and a parity accumulator once per tick. The
// asynchronous enable and reset inputs cross into the clock domain through
// two-stage synchronizers; no other part of the core reads a raw input.
package transmitter
