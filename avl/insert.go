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

// Insert adds value unless it is already present and returns the keys
// visited on the way down. Inserting a duplicate leaves the tree untouched.
func (tree *Tree[K]) Insert(value K) TraceResult[K] {
	trace := TraceResult[K]{Op: OpInsert, Value: value}
	tree.root = tree.insertRecursive(tree.root, value, &trace)
	return trace
}

func (tree *Tree[K]) insertRecursive(node *Node[K], value K, trace *TraceResult[K]) *Node[K] {
	if node == nil {
		tree.count++
		return newNode(value)
	}

	trace.visit(node.value)

	if value < node.value {
		node.left = tree.insertRecursive(node.left, value, trace)
	} else if value > node.value {
		node.right = tree.insertRecursive(node.right, value, trace)
	} else {
		return node
	}

	updateHeight(node)

	// The side the new key went down decides single versus double rotation.
	balance := balanceFactor(node)
	if balance > 1 {
		if value < node.left.value {
			return rotateRight(node)
		}
		// Left-Right case
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	} else if balance < -1 {
		if value > node.right.value {
			return rotateLeft(node)
		}
		// Right-Left case
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}
