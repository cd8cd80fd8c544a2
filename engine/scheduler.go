package engine

// StepHandle identifies a requested step. The zero handle is never issued.
type StepHandle uint64

// Scheduler runs a step callback once at the next frame boundary.
type Scheduler interface {
	RequestStep(fn func()) StepHandle
	CancelStep(h StepHandle)
}

// FrameScheduler queues steps until the host calls Advance, once per frame.
// It is not safe for concurrent use; hosts drive it from their loop.
type FrameScheduler struct {
	next    StepHandle
	pending map[StepHandle]func()
	order   []StepHandle
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{pending: make(map[StepHandle]func())}
}

func (s *FrameScheduler) RequestStep(fn func()) StepHandle {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

func (s *FrameScheduler) CancelStep(h StepHandle) {
	delete(s.pending, h)
}

// Advance runs the steps that were pending when it was called. Steps requested
// while advancing wait for the next call. It returns how many steps ran.
func (s *FrameScheduler) Advance() int {
	order := s.order
	s.order = nil
	ran := 0
	for _, h := range order {
		fn, ok := s.pending[h]
		if !ok {
			continue
		}
		delete(s.pending, h)
		fn()
		ran++
	}
	return ran
}

func (s *FrameScheduler) Pending() int {
	return len(s.pending)
}
