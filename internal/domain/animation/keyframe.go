package animation

// Keyframe is one entry of a play sequence.
// Delay is optional; nil means the sequence default is used.
type Keyframe struct {
	Sprite int
	Delay  *float64 // seconds
}

// Key creates a keyframe that uses the sequence default delay
func Key(sprite int) Keyframe {
	return Keyframe{Sprite: sprite}
}

// KeyWithDelay creates a keyframe with its own delay (seconds)
func KeyWithDelay(sprite int, delay float64) Keyframe {
	return Keyframe{Sprite: sprite, Delay: &delay}
}

// Frame is a keyframe with its delay resolved
type Frame struct {
	Sprite int
	Delay  float64
}

// Sequence is an immutable list of keyframes with a default delay.
// An empty sequence is valid and makes its play node a no-op.
type Sequence struct {
	keyframes []Keyframe
	delay     float64
}

// NewSequence creates a sequence with the given default delay (seconds)
func NewSequence(delay float64, keyframes ...Keyframe) Sequence {
	frames := make([]Keyframe, len(keyframes))
	copy(frames, keyframes)
	return Sequence{keyframes: frames, delay: delay}
}

// SequenceFromIndices creates a sequence of sprite indices played at a fixed fps
func SequenceFromIndices(fps float64, indices ...int) Sequence {
	frames := make([]Keyframe, len(indices))
	for i, sprite := range indices {
		frames[i] = Key(sprite)
	}
	return Sequence{keyframes: frames, delay: delayForFPS(fps)}
}

// SequenceFromRange creates a sequence from first to last sprite index (inclusive).
// A descending range plays backwards.
func SequenceFromRange(fps float64, first, last int) Sequence {
	return Sequence{keyframes: RangeKeys(first, last), delay: delayForFPS(fps)}
}

// RangeKeys returns one keyframe per sprite index from first to last inclusive,
// counting down when last < first
func RangeKeys(first, last int) []Keyframe {
	step := 1
	if last < first {
		step = -1
	}
	n := (last-first)*step + 1
	frames := make([]Keyframe, 0, n)
	for i := 0; i < n; i++ {
		frames = append(frames, Key(first+i*step))
	}
	return frames
}

// Len returns the number of keyframes
func (s Sequence) Len() int {
	return len(s.keyframes)
}

// DefaultDelay returns the delay used by keyframes without their own
func (s Sequence) DefaultDelay() float64 {
	return s.delay
}

// At returns the keyframe at index with its delay resolved
func (s Sequence) At(index int) (Frame, bool) {
	if index < 0 || index >= len(s.keyframes) {
		return Frame{}, false
	}
	kf := s.keyframes[index]
	delay := s.delay
	if kf.Delay != nil {
		delay = *kf.Delay
	}
	return Frame{Sprite: kf.Sprite, Delay: delay}, true
}

// TotalDuration returns the sum of all resolved delays
func (s Sequence) TotalDuration() float64 {
	var total float64
	for i := range s.keyframes {
		f, _ := s.At(i)
		total += f.Delay
	}
	return total
}

func delayForFPS(fps float64) float64 {
	if fps <= 0 {
		return 0
	}
	return 1 / fps
}
