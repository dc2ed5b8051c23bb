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

import "github.com/cybrota/avltrace/avl"

const historyLimit = 64

// Session owns one tree and the traces produced against it. Callers
// serialize access; the TUI does so through its update loop.
type Session struct {
	tree    *avl.Tree[int]
	history []avl.TraceResult[int]
	limit   int
}

func NewSession() *Session {
	return &Session{tree: avl.New[int](), limit: historyLimit}
}

func (s *Session) Tree() *avl.Tree[int] {
	return s.tree
}

// Apply runs a single command and records its trace.
func (s *Session) Apply(cmd Command) avl.TraceResult[int] {
	var trace avl.TraceResult[int]
	if cmd.Op == avl.OpDelete {
		trace = s.tree.Delete(cmd.Value)
	} else {
		trace = s.tree.Insert(cmd.Value)
	}

	s.history = append(s.history, trace)
	if len(s.history) > s.limit {
		s.history = s.history[len(s.history)-s.limit:]
	}
	return trace
}

func (s *Session) ApplyAll(cmds []Command) []avl.TraceResult[int] {
	traces := make([]avl.TraceResult[int], 0, len(cmds))
	for _, cmd := range cmds {
		traces = append(traces, s.Apply(cmd))
	}
	return traces
}

// Last returns the most recent trace, if any.
func (s *Session) Last() (avl.TraceResult[int], bool) {
	if len(s.history) == 0 {
		return avl.TraceResult[int]{}, false
	}
	return s.history[len(s.history)-1], true
}

func (s *Session) History() []avl.TraceResult[int] {
	return s.history
}

func (s *Session) Reset() {
	s.tree.Clear()
	s.history = nil
}
