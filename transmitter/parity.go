package transmitter

// Parity selects the parity policy of a transmitter.
type Parity int

// Parity policies.
const (
	// ParityNone omits the parity bit; the stop bit directly follows the
	// last data bit.
	ParityNone Parity = iota

	// ParityEven drives the XOR-reduction of the data bits.
	ParityEven

	// ParityOdd drives the inverted XOR-reduction of the data bits.
	ParityOdd
)

func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "none"
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	}

	return "invalid"
}

// parityAccumulator folds transmitted bits into a running parity bit. The
// result is defined only after all the data bits have been accumulated.
type parityAccumulator struct {
	odd bool
	acc bool
}

func (p *parityAccumulator) reset() {
	p.acc = false
}

func (p *parityAccumulator) accumulate(bit bool) {
	p.acc = p.acc != bit
}

func (p *parityAccumulator) result() bool {
	if p.odd {
		return !p.acc
	}

	return p.acc
}
