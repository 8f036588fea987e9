package replay

// FormatVersion is written to every recording
const FormatVersion = "2.0"

// FrameEvent records one gameplay event of one tick
type FrameEvent struct {
	F    int     `json:"f"`              // Frame number
	E    string  `json:"e"`              // Event name
	Axis float64 `json:"axis,omitempty"` // Moving only
}

// ReplayData contains all data needed to replay an animation session.
// Ticks without events have no entry in Frames.
type ReplayData struct {
	Version   string       `json:"version"`
	Tree      string       `json:"tree"`
	StartTime string       `json:"startTime"`
	Ticks     int          `json:"ticks"`
	Frames    []FrameEvent `json:"frames"`
}
