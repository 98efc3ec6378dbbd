// Package countup computes the frames of the animated stat counter.
//
// A numeric stat is shown counting from zero up to its target over a fixed
// duration in a fixed number of evenly spaced steps. The server renders the
// whole frame sequence so the browser only has to play it back.
package countup

import (
	"math"
	"time"
)

const (
	// DefaultDuration is the nominal animation length.
	DefaultDuration = 2 * time.Second
	// DefaultSteps is the number of discrete increments.
	DefaultSteps = 60
)

// Schedule describes one count-up animation.
type Schedule struct {
	Target   int64
	Duration time.Duration
	Steps    int
}

// Frame is the value shown from At onward until the next frame.
type Frame struct {
	At    time.Duration
	Value int64
}

// New returns the default schedule for target.
func New(target int64) Schedule {
	return Schedule{Target: target, Duration: DefaultDuration, Steps: DefaultSteps}
}

func (s Schedule) normalized() Schedule {
	if s.Duration <= 0 {
		s.Duration = DefaultDuration
	}
	if s.Steps <= 0 {
		s.Steps = DefaultSteps
	}
	return s
}

// Interval is the time between two consecutive frames.
func (s Schedule) Interval() time.Duration {
	s = s.normalized()
	return s.Duration / time.Duration(s.Steps)
}

// Frames returns the displayed values starting with zero at time zero. Every
// tick adds Target/Steps to a running total that is floored for display; the
// tick that reaches the target shows it exactly and ends the sequence.
// Targets at or below zero have nothing to count and yield a single frame.
func (s Schedule) Frames() []Frame {
	s = s.normalized()
	if s.Target <= 0 {
		return []Frame{{At: 0, Value: s.Target}}
	}
	interval := s.Interval()
	increment := float64(s.Target) / float64(s.Steps)
	frames := make([]Frame, 0, s.Steps+1)
	frames = append(frames, Frame{At: 0, Value: 0})

	current := 0.0
	var last int64
	for tick := 1; ; tick++ {
		current += increment
		at := interval * time.Duration(tick)
		if current >= float64(s.Target) || tick >= s.Steps {
			frames = append(frames, Frame{At: at, Value: s.Target})
			return frames
		}
		value := int64(math.Floor(current))
		if value < last {
			value = last
		}
		if value > s.Target {
			value = s.Target
		}
		last = value
		frames = append(frames, Frame{At: at, Value: value})
	}
}

// ValueAt returns the value on display after elapsed time.
func (s Schedule) ValueAt(elapsed time.Duration) int64 {
	frames := s.Frames()
	value := frames[0].Value
	for _, frame := range frames {
		if frame.At > elapsed {
			break
		}
		value = frame.Value
	}
	return value
}

// Values returns the frame values in order.
func (s Schedule) Values() []int64 {
	frames := s.Frames()
	values := make([]int64, len(frames))
	for idx, frame := range frames {
		values[idx] = frame.Value
	}
	return values
}
