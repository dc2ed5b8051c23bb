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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/avltrace/avl"
	"github.com/mattn/go-shellwords"
)

// Command is one requested mutation.
type Command struct {
	Op    avl.Op
	Value int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d", c.Op, c.Value)
}

var verbs = map[string]avl.Op{
	"insert": avl.OpInsert,
	"i":      avl.OpInsert,
	"add":    avl.OpInsert,
	"delete": avl.OpDelete,
	"d":      avl.OpDelete,
	"del":    avl.OpDelete,
	"remove": avl.OpDelete,
	"rm":     avl.OpDelete,
}

// stripComment cuts an unquoted '#' that starts a word, and everything after it.
func stripComment(line string) string {
	var single, double bool
	for i, r := range line {
		switch r {
		case '\'':
			if !double {
				single = !single
			}
		case '"':
			if !single {
				double = !double
			}
		case '#':
			if !single && !double && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t') {
				return line[:i]
			}
		}
	}
	return line
}

// ParseLine turns "insert 10 20" into one command per key. Blank lines and
// '#' comments produce no commands.
func ParseLine(line string) ([]Command, error) {
	line = strings.TrimSpace(stripComment(line))
	if line == "" {
		return nil, nil
	}

	parser := shellwords.NewParser()
	args, err := parser.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	// the parser stops at shell operators such as ; | & < >
	if parser.Position != -1 {
		return nil, fmt.Errorf("unexpected %q in %q", strings.TrimSpace(line[parser.Position:]), line)
	}
	if len(args) == 0 {
		return nil, nil
	}

	op, ok := verbs[strings.ToLower(args[0])]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q (want insert or delete)", args[0])
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("%s: at least one key is required", op)
	}

	cmds := make([]Command, 0, len(args)-1)
	for _, arg := range args[1:] {
		// commas are accepted as separators too: "insert 1,2,3"
		for _, field := range strings.Split(arg, ",") {
			if field == "" {
				continue
			}
			value, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid key %q", op, field)
			}
			cmds = append(cmds, Command{Op: op, Value: value})
		}
	}
	if len(cmds) == 0 {
		return nil, fmt.Errorf("%s: at least one key is required", op)
	}
	return cmds, nil
}

// ReadScript parses every line of r. Errors carry the 1-based line number.
func ReadScript(r io.Reader) ([]Command, error) {
	var cmds []Command

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parsed, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		cmds = append(cmds, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
