// Command uartsim runs serial transmitter simulations from the command
// line.
package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	Execute()
	atexit.Exit(0)
}
