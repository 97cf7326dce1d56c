package campfire

// StoryEvent reports what happened to the story during one Advance.
type StoryEvent struct {
	Started  int // Fragment that began, or -1
	Finished int // Fragment that ended, or -1
	Complete bool
}

// Story sequences the narrated fragments. After an initial delay each
// fragment plays for its duration; the next one starts on the following
// tick. Time only advances while the fire burns.
type Story struct {
	durations []float64
	delay     float64 // counts down; the story has begun once negative
	index     int     // current fragment, or number finished
	playing   bool
	elapsed   float64 // seconds into the current fragment
	complete  bool
}

// NewStory creates a story over fragments of the given durations (seconds).
func NewStory(durations []float64, delay float64) *Story {
	s := &Story{durations: durations}
	s.Reset(delay)
	return s
}

// Reset rewinds to the first fragment with a fresh delay.
func (s *Story) Reset(delay float64) {
	s.delay = delay
	s.index = 0
	s.playing = false
	s.elapsed = 0
	s.complete = false
}

// Advance moves the story forward by dt seconds.
func (s *Story) Advance(dt float64) StoryEvent {
	ev := StoryEvent{Started: -1, Finished: -1}
	if s.complete {
		return ev
	}

	if s.delay >= 0 {
		s.delay -= dt
		return ev
	}

	if s.index >= len(s.durations) {
		s.complete = true
		ev.Complete = true
		return ev
	}

	if !s.playing {
		s.playing = true
		s.elapsed = 0
		ev.Started = s.index
		return ev
	}

	s.elapsed += dt
	if s.elapsed >= s.durations[s.index] {
		s.playing = false
		ev.Finished = s.index
		s.index++
		if s.index == len(s.durations) {
			s.complete = true
			ev.Complete = true
		}
	}
	return ev
}

// Begun reports whether the opening delay has passed.
func (s *Story) Begun() bool {
	return s.delay < 0
}

// Current returns the fragment being narrated.
func (s *Story) Current() (int, bool) {
	return s.index, s.playing
}

// Heard returns the number of fragments that finished playing.
func (s *Story) Heard() int {
	return s.index
}

// Len returns the number of fragments.
func (s *Story) Len() int {
	return len(s.durations)
}

// Complete reports whether every fragment has been told.
func (s *Story) Complete() bool {
	return s.complete
}
