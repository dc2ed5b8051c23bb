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

package avl

import "cmp"

// Op identifies the mutation that produced a trace.
type Op int

const (
	OpInsert Op = iota
	OpDelete
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// EventKind distinguishes plain descent steps from successor promotion.
type EventKind int

const (
	// Visit records a node entered on the way down.
	Visit EventKind = iota
	// Promote records the in-order successor copied into a node being
	// deleted. It is emitted once, before descending to remove the successor.
	Promote
)

func (k EventKind) String() string {
	if k == Promote {
		return "promote"
	}
	return "visit"
}

type Event[K cmp.Ordered] struct {
	Kind EventKind
	Key  K
}

// TraceResult is everything a mutation hands to the presentation layer.
type TraceResult[K cmp.Ordered] struct {
	Op     Op
	Value  K
	Events []Event[K]
}

func (r *TraceResult[K]) visit(key K) {
	r.Events = append(r.Events, Event[K]{Kind: Visit, Key: key})
}

func (r *TraceResult[K]) promote(key K) {
	r.Events = append(r.Events, Event[K]{Kind: Promote, Key: key})
}

// Path returns the key of every event in order, promotion included.
func (r TraceResult[K]) Path() []K {
	path := make([]K, 0, len(r.Events))
	for _, e := range r.Events {
		path = append(path, e.Key)
	}
	return path
}

// Promoted reports the successor key promoted by a two-child deletion.
func (r TraceResult[K]) Promoted() (K, bool) {
	for _, e := range r.Events {
		if e.Kind == Promote {
			return e.Key, true
		}
	}
	var zero K
	return zero, false
}

// Signed is the set of key types that can carry a negated promotion marker.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// SignedTrace flattens r into the legacy encoding where a promotion is
// written as the negated key. A promoted key of 0 is indistinguishable from
// a visit in this form; use Events when that matters.
func SignedTrace[K interface {
	cmp.Ordered
	Signed
}](r TraceResult[K]) []K {
	out := make([]K, 0, len(r.Events))
	for _, e := range r.Events {
		if e.Kind == Promote {
			out = append(out, -e.Key)
			continue
		}
		out = append(out, e.Key)
	}
	return out
}
