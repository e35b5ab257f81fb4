package gfx

// EventsConsumerStrategy decides how many pending events are handled before
// the loop goes back to rendering. poll returns false when the queue is empty.
type EventsConsumerStrategy interface {
	Consume(poll func() (Event, bool), handle func(Event)) int
}

type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll func() (Event, bool), handle func(Event)) int {
	count := 0
	for {
		event, ok := poll()
		if !ok {
			return count
		}
		handle(event)
		count++
	}
}

type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll func() (Event, bool), handle func(Event)) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	count := 0
	for count < max {
		event, ok := poll()
		if !ok {
			return count
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
