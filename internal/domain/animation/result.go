package animation

// KeepSprite is the atlas index meaning "leave the displayed frame as is"
const KeepSprite = -1

// StepResult is what a single node produces when visited.
// Variants: StepRedirect, StepDescend, StepSprite, StepFinished, StepNoUpdate, StepFailure.
type StepResult interface {
	isStepResult()
}

// StepRedirect continues evaluation at Target with the same stack
type StepRedirect struct {
	Target NodeID
}

func (StepRedirect) isStepResult() {}

// StepDescend evaluates Target and then pushes Return (advanced on Finished)
type StepDescend struct {
	Target NodeID
	Return StackEntry
}

func (StepDescend) isStepResult() {}

// StepSprite is a terminal frame update
type StepSprite struct {
	Delay  float64 // seconds until the next frame event
	Frame  int     // keyframe index inside the node's sequence
	Sprite int     // atlas index, KeepSprite for no change
	Node   NodeID
}

func (StepSprite) isStepResult() {}

// StepFinished reports that a node has nothing more to play
type StepFinished struct{}

func (StepFinished) isStepResult() {}

// StepNoUpdate reports no observable change this tick
type StepNoUpdate struct{}

func (StepNoUpdate) isStepResult() {}

// StepFailure aborts evaluation with a message
type StepFailure struct {
	Message string
}

func (StepFailure) isStepResult() {}

// Kind classifies a tree evaluation result
type Kind int

const (
	KindNoUpdate Kind = iota
	KindUpdate
	KindFinished
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindNoUpdate:
		return "NoUpdate"
	case KindUpdate:
		return "Update"
	case KindFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Result is the outcome of one tree evaluation.
// Only KindUpdate carries the frame fields.
type Result struct {
	Kind          Kind
	Time          float64
	KeyframeIndex int
	AtlasIndex    int
	CurrentNode   NodeID
}

// ChangesSprite reports whether the caller should set a new atlas frame
func (r Result) ChangesSprite() bool {
	return r.Kind == KindUpdate && r.AtlasIndex != KeepSprite
}
