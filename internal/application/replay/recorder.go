package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rotisserie/eris"

	"github.com/CodingC1402/Spider-game/internal/application/state"
)

// Recorder handles event recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a recorder for a session animated by the named tree
func NewRecorder(tree string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Tree:      tree,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameEvent, 0, 512),
		},
		recording: true,
	}
}

// RecordFrame records one tick and its events, which may be none
func (r *Recorder) RecordFrame(events []state.Event) {
	if !r.recording {
		return
	}

	frame := r.data.Ticks
	for _, e := range events {
		fe := FrameEvent{F: frame, E: e.Name()}
		if m, ok := e.(state.Moving); ok {
			fe.Axis = m.Axis
		}
		r.data.Frames = append(r.data.Frames, fe)
	}
	r.data.Ticks++
}

// Write encodes the recording as indented JSON
func (r *Recorder) Write(w io.Writer) error {
	if r.data.Ticks == 0 {
		return eris.New("no frames to save")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return eris.Wrap(err, "failed to encode replay")
	}
	return nil
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return eris.Wrap(err, "failed to create file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = eris.Wrap(cerr, "failed to close file")
		}
	}()

	return r.Write(file)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded ticks
func (r *Recorder) FrameCount() int {
	return r.data.Ticks
}

// Data returns the replay data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
