package transmitter

// shiftDatapath holds the latched data word and the index of the bit being
// shifted out. Only the controller drives it, and only from the tick
// handler, so advancing past the last bit is unreachable rather than an
// error case.
type shiftDatapath struct {
	width    int
	data     uint64
	bitIndex int
}

// latch captures a word at the IDLE to START transition. The word is
// immutable until the next latch.
func (d *shiftDatapath) latch(word uint64) {
	d.data = word & d.mask()
	d.bitIndex = 0
}

// currentBit returns the data bit currently being output, least-significant
// bit first.
func (d *shiftDatapath) currentBit() bool {
	return d.data>>uint(d.bitIndex)&1 == 1
}

// advance moves to the next data bit. The controller transitions out of the
// DATA state instead of advancing past the last bit.
func (d *shiftDatapath) advance() {
	d.bitIndex++
}

// atLastBit reports whether the final data bit is selected.
func (d *shiftDatapath) atLastBit() bool {
	return d.bitIndex == d.width-1
}

func (d *shiftDatapath) clear() {
	d.data = 0
	d.bitIndex = 0
}

func (d *shiftDatapath) mask() uint64 {
	if d.width == 64 {
		return ^uint64(0)
	}

	return 1<<uint(d.width) - 1
}
