package transmitter

// syncChain is a two-stage synchronizer. The raw input is shifted through
// the chain once per tick, so the output lags the input by up to two ticks
// and can never present a half-settled level to the controller.
type syncChain struct {
	stages [2]bool
}

// sample shifts the raw level into the chain and returns the synchronized
// level for the current tick.
func (s *syncChain) sample(raw bool) bool {
	out := s.stages[1]
	s.stages[1] = s.stages[0]
	s.stages[0] = raw

	return out
}

// pending reports whether a level is still propagating through the chain.
func (s *syncChain) pending() bool {
	return s.stages[0] || s.stages[1]
}

func (s *syncChain) clear() {
	s.stages[0] = false
	s.stages[1] = false
}

// resetSyncChain synchronizes the reset input. Reset asserts asynchronously,
// taking effect within the tick it is raised, but deasserts synchronously:
// the release is observed only after the synchronized level has dropped.
// This keeps reset removal from racing with the reset-driven state
// assignment.
type resetSyncChain struct {
	chain syncChain
}

func (r *resetSyncChain) sample(raw bool) bool {
	synced := r.chain.sample(raw)
	if raw {
		return true
	}

	return synced
}

func (r *resetSyncChain) pending() bool {
	return r.chain.pending()
}
