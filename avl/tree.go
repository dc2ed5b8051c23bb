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

// Tree is an AVL tree of unique keys. Keys must be totally ordered; float
// NaN values break that precondition and are not supported.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Root returns the current root, nil when the tree is empty.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Len returns the number of keys stored.
func (tree *Tree[K]) Len() int {
	return tree.count
}

func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Height returns the height of the whole tree, 0 when empty.
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Clear drops every node.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Contains reports whether value is stored in the tree.
func (tree *Tree[K]) Contains(value K) bool {
	node := tree.root
	for node != nil {
		switch {
		case value < node.value:
			node = node.left
		case value > node.value:
			node = node.right
		default:
			return true
		}
	}
	return false
}
