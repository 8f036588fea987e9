package config

import (
	"slices"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/CodingC1402/Spider-game/internal/domain/animation"
)

// ErrInvalidTree is returned for animation files that cannot become a tree
var ErrInvalidTree = eris.New("invalid animation tree")

// nodeNamespace scopes the name-derived node ids
var nodeNamespace = uuid.MustParse("3f1c2a8e-5d0b-4f7e-9a61-2c4b8d7e1f05")

// NodeIDFor returns the id a node named name gets when built.
// Ids are derived from names so rebuilding a file yields the same ids.
func NodeIDFor(name string) animation.NodeID {
	return uuid.NewSHA1(nodeNamespace, []byte(name))
}

// Built is the result of building an animation file
type Built[S comparable] struct {
	Tree  *animation.Tree[S]
	IDs   map[string]animation.NodeID
	Names map[animation.NodeID]string
}

// Build assembles and validates a tree from an animation file.
// parse converts match state keys to S.
func Build[S comparable](file *AnimationFile, parse func(string) (S, error)) (*Built[S], error) {
	if file == nil || len(file.Nodes) == 0 {
		return nil, eris.Wrap(ErrInvalidTree, "no nodes")
	}
	if _, ok := file.Nodes[file.Start]; !ok {
		return nil, eris.Wrapf(ErrInvalidTree, "start node %q not defined", file.Start)
	}

	names := make([]string, 0, len(file.Nodes))
	for name := range file.Nodes {
		names = append(names, name)
	}
	slices.Sort(names)

	b := &Built[S]{
		IDs:   make(map[string]animation.NodeID, len(names)),
		Names: make(map[animation.NodeID]string, len(names)),
	}
	for _, name := range names {
		id := NodeIDFor(name)
		b.IDs[name] = id
		b.Names[id] = name
	}

	nodes := make(map[string]animation.Node, len(names))
	for _, name := range names {
		node, err := buildNode(name, file.Nodes[name], b.IDs, parse)
		if err != nil {
			return nil, err
		}
		nodes[name] = node
	}

	b.Tree = animation.NewTree[S](nodes[file.Start])
	for _, name := range names {
		if name == file.Start {
			continue
		}
		if _, err := b.Tree.Insert(nodes[name]); err != nil {
			return nil, eris.Wrapf(err, "failed to insert node %q", name)
		}
	}
	if err := b.Tree.Validate(); err != nil {
		return nil, eris.Wrap(err, "failed to validate tree")
	}
	return b, nil
}

func buildNode[S comparable](name string, def NodeDef, ids map[string]animation.NodeID, parse func(string) (S, error)) (animation.Node, error) {
	variants := 0
	for _, set := range []bool{def.Play != nil, def.Match != nil, def.All != nil} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return nil, eris.Wrapf(ErrInvalidTree, "node %q must define exactly one of play, match, all", name)
	}

	ref := func(target string) (animation.NodeID, error) {
		id, ok := ids[target]
		if !ok {
			return animation.NilID, eris.Wrapf(ErrInvalidTree, "node %q references undefined node %q", name, target)
		}
		return id, nil
	}

	switch {
	case def.Play != nil:
		return buildPlay(name, def.Play, ids[name])

	case def.Match != nil:
		fallback := animation.NilID
		if def.Match.Default != "" {
			id, err := ref(def.Match.Default)
			if err != nil {
				return nil, err
			}
			fallback = id
		}
		n := animation.NewMatchNode[S](fallback).WithID(ids[name])
		for key, target := range def.Match.States {
			st, err := parse(key)
			if err != nil {
				return nil, eris.Wrapf(err, "node %q", name)
			}
			id, err := ref(target)
			if err != nil {
				return nil, err
			}
			n.On(st, id)
		}
		return n, nil

	default:
		children := make([]animation.NodeID, 0, len(def.All.Children))
		for _, child := range def.All.Children {
			id, err := ref(child)
			if err != nil {
				return nil, err
			}
			children = append(children, id)
		}
		if len(children) == 0 {
			return nil, eris.Wrapf(ErrInvalidTree, "all node %q has no children", name)
		}
		return animation.NewAllNode(def.All.Loop, children...).WithID(ids[name]), nil
	}
}

func buildPlay(name string, def *PlayDef, id animation.NodeID) (*animation.PlayNode, error) {
	if len(def.Frames) > 0 && len(def.Range) > 0 {
		return nil, eris.Wrapf(ErrInvalidTree, "play node %q sets both frames and range", name)
	}

	delay := def.Delay
	if delay <= 0 && def.FPS > 0 {
		delay = 1 / def.FPS
	}

	var keys []animation.Keyframe
	switch {
	case len(def.Range) == 2:
		keys = animation.RangeKeys(def.Range[0], def.Range[1])
	case len(def.Range) != 0:
		return nil, eris.Wrapf(ErrInvalidTree, "play node %q: range needs [first, last]", name)
	default:
		for _, f := range def.Frames {
			if f.Delay != nil {
				keys = append(keys, animation.KeyWithDelay(f.Sprite, *f.Delay))
			} else {
				keys = append(keys, animation.Key(f.Sprite))
			}
		}
	}
	seq := animation.NewSequence(delay, keys...)
	if seq.Len() == 0 {
		return nil, eris.Wrapf(ErrInvalidTree, "play node %q has no frames", name)
	}

	n := animation.NewPlayNode(seq, def.Loop).WithID(id).WithReset(true)
	if def.Reset != nil {
		n.WithReset(*def.Reset)
	}
	if def.Speed != nil {
		n.WithSpeed(*def.Speed)
	}
	return n, nil
}
