// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cybrota/avltrace/avl"
)

// Highlight describes which nodes to mark while a trace is replayed.
type Highlight struct {
	Path        []int
	Target      *int
	Replacement *int
}

// highlightAt returns the highlight after the first step events of trace,
// one highlight per animation frame.
func highlightAt(trace avl.TraceResult[int], step int) Highlight {
	step = clamp(step, 0, len(trace.Events))
	target := trace.Value
	hl := Highlight{Target: &target}
	for _, e := range trace.Events[:step] {
		hl.Path = append(hl.Path, e.Key)
		if e.Kind == avl.Promote {
			key := e.Key
			hl.Replacement = &key
		}
	}
	return hl
}

func (hl Highlight) state(value int) nodeState {
	if hl.Target != nil && *hl.Target == value {
		return stateTarget
	}
	if hl.Replacement != nil && *hl.Replacement == value {
		return stateReplacement
	}
	for _, k := range hl.Path {
		if k == value {
			return stateVisited
		}
	}
	return stateNormal
}

func (hl Highlight) key() string {
	var b strings.Builder
	for _, k := range hl.Path {
		b.WriteString(strconv.Itoa(k))
		b.WriteByte(',')
	}
	if hl.Target != nil {
		fmt.Fprintf(&b, "t%d", *hl.Target)
	}
	if hl.Replacement != nil {
		fmt.Fprintf(&b, "r%d", *hl.Replacement)
	}
	return b.String()
}

// label decorates a key when there is no color to carry its state
func label(value int, state nodeState, plain bool) string {
	s := strconv.Itoa(value)
	if !plain {
		return s
	}
	switch state {
	case stateTarget:
		return "(" + s + ")"
	case stateReplacement:
		return "{" + s + "}"
	case stateVisited:
		return "[" + s + "]"
	default:
		return s
	}
}

type placed struct {
	node  *avl.Node[int]
	rank  int
	depth int
	label string
	state nodeState
}

// RenderTree draws the tree top-down: a node's column is its in-order rank,
// its row is its depth, and a row of / and \ joins each level to the next.
func RenderTree(root *avl.Node[int], hl Highlight, styles *Styles, cellWidth int) string {
	if root == nil {
		return "(empty tree)"
	}

	var nodes []placed
	var walk func(n *avl.Node[int], depth int)
	walk = func(n *avl.Node[int], depth int) {
		if n == nil {
			return
		}
		walk(n.Left(), depth+1)
		state := hl.state(n.Value())
		nodes = append(nodes, placed{
			node:  n,
			rank:  len(nodes),
			depth: depth,
			label: label(n.Value(), state, styles.Plain),
			state: state,
		})
		walk(n.Right(), depth+1)
	}
	walk(root, 0)

	width := cellWidth
	for _, p := range nodes {
		width = max(width, len(p.label)+1)
	}
	center := func(rank int) int { return rank*width + width/2 }

	rankOf := make(map[*avl.Node[int]]int, len(nodes))
	levels := make(map[int][]placed)
	maxDepth := 0
	for _, p := range nodes {
		rankOf[p.node] = p.rank
		levels[p.depth] = append(levels[p.depth], p)
		maxDepth = max(maxDepth, p.depth)
	}

	var lines []string
	for depth := 0; depth <= maxDepth; depth++ {
		level := levels[depth]
		sort.Slice(level, func(i, j int) bool { return level[i].rank < level[j].rank })

		var row strings.Builder
		pos := 0
		for _, p := range level {
			start := max(center(p.rank)-len(p.label)/2, pos)
			row.WriteString(strings.Repeat(" ", start-pos))
			row.WriteString(styles.node(p.state).Render(p.label))
			pos = start + len(p.label)
		}
		lines = append(lines, strings.TrimRight(row.String(), " "))

		if depth == maxDepth {
			break
		}
		edges := []rune(strings.Repeat(" ", len(nodes)*width))
		for _, p := range level {
			c := center(p.rank)
			if l := p.node.Left(); l != nil {
				edges[(center(rankOf[l])+c)/2] = '/'
			}
			if r := p.node.Right(); r != nil {
				edges[(center(rankOf[r])+c+1)/2] = '\\'
			}
		}
		lines = append(lines, styles.Edge.Render(strings.TrimRight(string(edges), " ")))
	}
	return strings.Join(lines, "\n")
}

// FormatTrace renders a trace as "insert 30: 10 → 20". Promotions show as
// a starred key, or as a negated key when signed is set.
func FormatTrace(trace avl.TraceResult[int], signed bool) string {
	var steps []string
	if signed {
		for _, k := range avl.SignedTrace(trace) {
			steps = append(steps, strconv.Itoa(k))
		}
	} else {
		for _, e := range trace.Events {
			s := strconv.Itoa(e.Key)
			if e.Kind == avl.Promote {
				s += "*"
			}
			steps = append(steps, s)
		}
	}

	path := "(empty)"
	if len(steps) > 0 {
		path = strings.Join(steps, " → ")
	}
	return fmt.Sprintf("%s %d: %s", trace.Op, trace.Value, path)
}

// fingerprint identifies a tree shape, heights included
func fingerprint(root *avl.Node[int]) string {
	var b strings.Builder
	var walk func(n *avl.Node[int])
	walk = func(n *avl.Node[int]) {
		if n == nil {
			b.WriteByte('.')
			return
		}
		fmt.Fprintf(&b, "%d:%d(", n.Value(), n.Height())
		walk(n.Left())
		walk(n.Right())
		b.WriteByte(')')
	}
	walk(root)
	return b.String()
}
