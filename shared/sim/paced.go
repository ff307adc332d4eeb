package sim

import (
	"io"
	"sync"
	"time"
)

// PacedSource replays another source in real time: every UpdateTick it
// forwards waits for the next tick of a wall clock and carries the measured
// time since the previous one instead of its scripted dt. Other events pass
// straight through.
type PacedSource struct {
	src      EventSource
	ticker   *time.Ticker
	last     time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewPacedSource paces src at tickRate updates per second.
func NewPacedSource(src EventSource, tickRate int) *PacedSource {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &PacedSource{
		src:    src,
		ticker: time.NewTicker(time.Second / time.Duration(tickRate)),
		last:   time.Now(),
		stop:   make(chan struct{}),
	}
}

// Next implements EventSource. After Stop it returns io.EOF.
func (p *PacedSource) Next() (Event, error) {
	select {
	case <-p.stop:
		return nil, io.EOF
	default:
	}

	ev, err := p.src.Next()
	if err != nil {
		return nil, err
	}
	if _, ok := ev.(UpdateTick); !ok {
		return ev, nil
	}

	select {
	case <-p.stop:
		return nil, io.EOF
	case now := <-p.ticker.C:
		dt := now.Sub(p.last).Seconds()
		p.last = now
		return UpdateTick{DT: dt}, nil
	}
}

// Stop ends the source. It is safe to call from another goroutine, and more
// than once.
func (p *PacedSource) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.ticker.Stop()
	})
}
