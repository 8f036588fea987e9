package animation

import "github.com/rs/zerolog"

// Evaluator is the read-only side of a tree
type Evaluator[S comparable] interface {
	Evaluate(st State[S], dt float64, stack LogicStack) (Result, LogicStack, error)
}

// FrameSetter is anything that displays an atlas frame
type FrameSetter interface {
	SetFrame(index int)
}

// Animator applies tree evaluations to entity states and sprites
type Animator[S comparable] struct {
	tree   Evaluator[S]
	logger zerolog.Logger
}

// AnimatorOption configures an Animator
type AnimatorOption[S comparable] func(*Animator[S])

// WithLogger sets the animator logger
func WithLogger[S comparable](logger zerolog.Logger) AnimatorOption[S] {
	return func(a *Animator[S]) {
		a.logger = logger
	}
}

// NewAnimator creates an animator over a (preferably frozen) tree
func NewAnimator[S comparable](tree Evaluator[S], opts ...AnimatorOption[S]) *Animator[S] {
	a := &Animator[S]{
		tree:   tree,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Tick advances one entity by dt seconds.
// On error neither st nor sprite is modified.
func (a *Animator[S]) Tick(st *State[S], sprite FrameSetter, dt float64) (Result, error) {
	res, stack, err := a.Evaluate(*st, dt)
	if err != nil {
		return Result{}, err
	}
	Apply(st, sprite, res, stack, dt)
	return res, nil
}

// Evaluate runs the tree for st without committing anything.
// Hosts that evaluate entities in parallel call Apply afterwards.
func (a *Animator[S]) Evaluate(st State[S], dt float64) (Result, LogicStack, error) {
	st.Held += dt
	res, stack, err := a.tree.Evaluate(st, dt, st.Stack)
	if err != nil {
		a.logger.Error().Err(err).Interface("state", st.Requested).Msg("animation evaluation failed")
		return Result{}, nil, err
	}
	return res, stack, nil
}

// Apply commits an evaluation result to st and sprite
func Apply[S comparable](st *State[S], sprite FrameSetter, res Result, stack LogicStack, dt float64) {
	st.Held += dt
	st.Stack = stack
	switch res.Kind {
	case KindUpdate:
		st.Time = res.Time
		st.Frame = res.KeyframeIndex
		st.Node = res.CurrentNode
	case KindFinished:
		// marks the finish as delivered so it is not reported again
		st.Frame++
	case KindNoUpdate:
	}
	if res.ChangesSprite() && sprite != nil {
		sprite.SetFrame(res.AtlasIndex)
	}
}
