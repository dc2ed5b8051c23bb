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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

const keysMarkdown = `
# Keys
* **enter**: apply the typed command, e.g. ` + "`insert 10 20 30`" + ` or ` + "`delete 20`" + `
* **up / down**: faster / slower traversal animation
* **ctrl+y**: copy the last traversal to the clipboard
* **ctrl+r**: start over with an empty tree
* **f1**: toggle this help
* **esc** or **ctrl+c**: quit

# Legend
* yellow: visited on the way down
* purple: successor promoted into a deleted node (starred in the trace)
* green: the requested key
`

func usageMarkdown() string {
	return fmt.Sprintf(`
 **avltrace %s**

Watch an AVL tree balance itself. Every insert and delete shows the keys
visited on the way down, then the rebalanced tree.

Built with Go %s

# Commands
* **avltrace run**: interactive viewer (the default)
* **avltrace replay [file]**: apply a script and print every traversal
* **avltrace stress**: random operations with invariant checks
* **avltrace settings**: show or create ~/%s
* **avltrace version**

# Scripts
One operation per line, any number of keys:

    insert 50 30 70
    delete 30
    # comments and blank lines are ignored
%s
# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), configFileName, keysMarkdown)
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}
