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
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel() Model {
	cfg := defaultConfig()
	cfg.Display.Colors = false
	return InitialModel(NewSession(), &cfg, NewStyles(false))
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next, cmd
}

func submitLine(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.textInput.SetValue(line)
	return press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// drain plays queued animations to the end by delivering ticks directly.
func drain(t *testing.T, m Model) Model {
	t.Helper()
	for i := 0; i < 100 && m.playing != nil; i++ {
		m, _ = press(t, m, stepMsg{gen: m.generation})
	}
	if m.playing != nil {
		t.Fatal("animation never finished")
	}
	return m
}

func TestModelAppliesCommandsOneAtATime(t *testing.T) {
	m := newTestModel()

	m, cmd := submitLine(t, m, "insert 50 30 70")
	if cmd == nil {
		t.Fatal("enter should schedule an animation tick")
	}
	if got := m.session.Tree().Len(); got != 1 {
		t.Fatalf("only the first command should be applied, tree has %d keys", got)
	}
	if len(m.pending) != 2 {
		t.Fatalf("pending = %v; want 2 queued commands", m.pending)
	}
	if m.textInput.Value() != "" {
		t.Errorf("input should be cleared after a valid command")
	}

	m = drain(t, m)
	if got := m.session.Tree().Len(); got != 3 {
		t.Errorf("tree has %d keys; want 3", got)
	}
	if want := "Traversal Complete: insert 70: 50"; m.traceLine != want {
		t.Errorf("traceLine = %q; want %q", m.traceLine, want)
	}
}

func TestModelStepsThroughPath(t *testing.T) {
	m := newTestModel()
	m.session.ApplyAll([]Command{{Value: 50}, {Value: 30}, {Value: 70}})

	m, _ = submitLine(t, m, "insert 20")
	if m.traceLine != "Starting Traversal..." {
		t.Errorf("traceLine = %q", m.traceLine)
	}

	m, cmd := press(t, m, stepMsg{gen: m.generation})
	if cmd == nil || m.traceLine != "Traversal Step 1: 50" {
		t.Errorf("after one tick traceLine = %q", m.traceLine)
	}
	m, _ = press(t, m, stepMsg{gen: m.generation})
	if m.traceLine != "Traversal Step 2: 50 → 30" {
		t.Errorf("after two ticks traceLine = %q", m.traceLine)
	}
	m, _ = press(t, m, stepMsg{gen: m.generation})
	if !strings.HasPrefix(m.traceLine, "Traversal Complete") || m.playing != nil {
		t.Errorf("after three ticks traceLine = %q", m.traceLine)
	}
}

func TestModelRejectsBadInput(t *testing.T) {
	m := newTestModel()
	m, cmd := submitLine(t, m, "flip 3")
	if cmd != nil {
		t.Errorf("invalid input should not start an animation")
	}
	if !strings.Contains(m.errMsg, "unknown operation") {
		t.Errorf("errMsg = %q", m.errMsg)
	}
	if !m.session.Tree().IsEmpty() {
		t.Errorf("tree should be untouched")
	}
}

func TestModelResetDropsStaleTicks(t *testing.T) {
	m := newTestModel()
	m, _ = submitLine(t, m, "insert 1 2 3")
	stale := stepMsg{gen: m.generation}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.session.Tree().IsEmpty() || len(m.pending) != 0 || m.playing != nil {
		t.Fatal("ctrl+r should clear tree and queue")
	}

	m, cmd := press(t, m, stale)
	if cmd != nil {
		t.Errorf("stale tick should be ignored")
	}
	if !m.session.Tree().IsEmpty() {
		t.Errorf("stale tick applied a command")
	}
}

func TestModelSpeedKeys(t *testing.T) {
	m := newTestModel()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.speed != 350*time.Millisecond {
		t.Errorf("speed = %v; want 350ms", m.speed)
	}

	for i := 0; i < 100; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.speed != maxSpeedMs*time.Millisecond {
		t.Errorf("speed = %v; want it clamped to %dms", m.speed, maxSpeedMs)
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel()
	if m.View() != "Initializing..." {
		t.Errorf("view before the first resize = %q", m.View())
	}

	m.session.ApplyAll([]Command{{Value: 20}, {Value: 10}, {Value: 30}})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	for _, want := range []string{"Tree", "20", "10", "30", "keys 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
