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

import (
	"cmp"
	"fmt"
)

// Check walks the whole tree and reports the first node that breaks key
// ordering, the balance condition or height bookkeeping, or a node count
// that disagrees with Len. A nil result means every invariant holds.
func (tree *Tree[K]) Check() error {
	n, err := check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("node count: actual: %d  expected: %d", n, tree.count)
	}
	return nil
}

// internal: lo and hi are exclusive bounds inherited from the ancestors
func check[K cmp.Ordered](node *Node[K], lo *K, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && node.value <= *lo {
		return 0, fmt.Errorf("order: key %v not greater than ancestor %v", node.value, *lo)
	}
	if hi != nil && node.value >= *hi {
		return 0, fmt.Errorf("order: key %v not less than ancestor %v", node.value, *hi)
	}

	nl, err := check(node.left, lo, &node.value)
	if err != nil {
		return 0, err
	}
	nr, err := check(node.right, &node.value, hi)
	if err != nil {
		return 0, err
	}

	if expected := max(height(node.left), height(node.right)) + 1; node.height != expected {
		return 0, fmt.Errorf("height: key %v stores %d  expected: %d", node.value, node.height, expected)
	}
	if b := balanceFactor(node); b > 1 || b < -1 {
		return 0, fmt.Errorf("balance: key %v has balance factor %d", node.value, b)
	}
	return nl + nr + 1, nil
}
