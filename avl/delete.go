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

// Delete removes value if present and returns the keys visited on the way
// down. When the removed node has two children the trace also carries one
// Promote event for the successor that takes its place.
func (tree *Tree[K]) Delete(value K) TraceResult[K] {
	trace := TraceResult[K]{Op: OpDelete, Value: value}
	tree.root = tree.deleteRecursive(tree.root, value, &trace)
	return trace
}

func (tree *Tree[K]) deleteRecursive(node *Node[K], value K, trace *TraceResult[K]) *Node[K] {
	if node == nil {
		return nil // Key not found
	}

	trace.visit(node.value)

	if value < node.value {
		node.left = tree.deleteRecursive(node.left, value, trace)
	} else if value > node.value {
		node.right = tree.deleteRecursive(node.right, value, trace)
	} else {
		// At most one child: the child, already balanced, takes this slot.
		if node.left == nil {
			tree.count--
			return node.right
		}
		if node.right == nil {
			tree.count--
			return node.left
		}

		successor := MinValue(node.right)
		trace.promote(successor)
		node.value = successor
		node.right = tree.deleteRecursive(node.right, successor, trace)
	}

	updateHeight(node)
	return rebalance(node)
}

// rebalance restores the AVL condition at node after a deletion below it.
// The child's own balance picks single versus double rotation.
func rebalance[K cmp.Ordered](node *Node[K]) *Node[K] {
	balance := balanceFactor(node)

	// Left-heavy
	if balance > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// Right-heavy
	if balance < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
