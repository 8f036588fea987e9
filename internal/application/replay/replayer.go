package replay

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/CodingC1402/Spider-game/internal/application/state"
)

// Replayer handles event playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
	next  int // index of the first unplayed entry in data.Frames
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, eris.Wrap(err, "failed to open file")
	}
	defer func() { _ = file.Close() }()

	return ReadReplay(file)
}

// ReadReplay decodes replay data and checks that every event is known
func ReadReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, eris.Wrap(err, "failed to decode replay")
	}
	for _, fe := range data.Frames {
		if _, err := state.ParseEvent(fe.E, fe.Axis); err != nil {
			return nil, eris.Wrapf(err, "frame %d", fe.F)
		}
		if fe.F < 0 || fe.F >= data.Ticks {
			return nil, eris.Errorf("frame %d outside recording of %d ticks", fe.F, data.Ticks)
		}
	}
	return &data, nil
}

// NextFrame returns the events of the current tick and advances.
// ok is false once every recorded tick has been played.
func (r *Replayer) NextFrame() (events []state.Event, ok bool) {
	if r.frame >= r.data.Ticks {
		return nil, false
	}

	for r.next < len(r.data.Frames) && r.data.Frames[r.next].F <= r.frame {
		fe := r.data.Frames[r.next]
		r.next++
		if fe.F < r.frame {
			continue
		}
		// validated by ReadReplay; unknown names from hand-built data are skipped
		if e, err := state.ParseEvent(fe.E, fe.Axis); err == nil {
			events = append(events, e)
		}
	}
	r.frame++
	return events, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.Ticks
}

// Tree returns the name of the tree the session was recorded with
func (r *Replayer) Tree() string {
	return r.data.Tree
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
}
