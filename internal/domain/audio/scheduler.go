package audio

import (
	"sync"
	"time"
)

// ScheduledBuffer is one downlink buffer placed on the playback timeline.
type ScheduledBuffer struct {
	ID       uint64
	StartAt  time.Duration
	Duration time.Duration
}

func (b ScheduledBuffer) End() time.Duration {
	return b.StartAt + b.Duration
}

// PlaybackScheduler chains downlink buffers back to back on a timeline
// measured from the start of the session.
//
// The watermark is where the next buffer starts. A buffer never starts
// before "now", so after a silence the chain restarts at the current time.
type PlaybackScheduler struct {
	mu        sync.Mutex
	watermark time.Duration
	nextID    uint64
	active    map[uint64]ScheduledBuffer
}

func NewPlaybackScheduler() *PlaybackScheduler {
	return &PlaybackScheduler{active: make(map[uint64]ScheduledBuffer)}
}

// Schedule places a buffer of length d at max(watermark, now) and advances
// the watermark past it. Buffers that finished before now are released.
func (s *PlaybackScheduler) Schedule(now, d time.Duration) ScheduledBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.releaseLocked(now)

	start := max(s.watermark, now)
	s.nextID++
	b := ScheduledBuffer{ID: s.nextID, StartAt: start, Duration: d}
	s.active[b.ID] = b
	s.watermark = start + d
	return b
}

// Interrupt drops every scheduled buffer and rewinds the watermark. It
// returns the buffers that were stopped.
func (s *PlaybackScheduler) Interrupt() []ScheduledBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	stopped := make([]ScheduledBuffer, 0, len(s.active))
	for _, b := range s.active {
		stopped = append(stopped, b)
	}
	clear(s.active)
	s.watermark = 0
	return stopped
}

func (s *PlaybackScheduler) Watermark() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watermark
}

// Active counts buffers still playing or queued at now.
func (s *PlaybackScheduler) Active(now time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked(now)
	return len(s.active)
}

func (s *PlaybackScheduler) releaseLocked(now time.Duration) {
	for id, b := range s.active {
		if b.End() <= now {
			delete(s.active, id)
		}
	}
}
