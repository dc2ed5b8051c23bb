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

// Node is one key in the tree. The presentation layer may walk the
// structure through the read-only accessors; all of them accept nil.
type Node[K cmp.Ordered] struct {
	value  K
	left   *Node[K]
	right  *Node[K]
	height int
}

func newNode[K cmp.Ordered](value K) *Node[K] {
	return &Node[K]{value: value, height: 1}
}

// Value returns the key held by the node.
func (n *Node[K]) Value() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.value
}

// Left returns the left subtree, nil when absent.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree, nil when absent.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached height of the subtree rooted at n, 0 for nil.
func (n *Node[K]) Height() int {
	return height(n)
}

func height[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight[K cmp.Ordered](node *Node[K]) {
	node.height = max(height(node.left), height(node.right)) + 1
}

func balanceFactor[K cmp.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

func rotateLeft[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so it goes first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

func rotateRight[K cmp.Ordered](node *Node[K]) *Node[K] {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// MinValue returns the smallest key in the subtree rooted at node.
// Calling it on an empty subtree is a programming error and panics.
func MinValue[K cmp.Ordered](node *Node[K]) K {
	if node == nil {
		panic("avl: MinValue called on an empty subtree")
	}
	for node.left != nil {
		node = node.left
	}
	return node.value
}
