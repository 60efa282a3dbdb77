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

package library

import "iter"

// walk visits the subtree in order and stops as soon as yield returns false.
func walk(node *AVLNode, yield func(*AVLNode) bool) bool {
	if node == nil {
		return true
	}
	return walk(node.Left, yield) && yield(node) && walk(node.Right, yield)
}

// All yields every record in ascending key order. Each call starts a fresh
// walk; the index must not be mutated while a walk is in progress.
func (tree *BalancedIndex) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		walk(tree.root, func(n *AVLNode) bool { return yield(n.Record) })
	}
}

// Nodes yields a view of every node in ascending key order.
func (tree *BalancedIndex) Nodes() iter.Seq[NodeView] {
	return func(yield func(NodeView) bool) {
		walk(tree.root, func(n *AVLNode) bool { return yield(n.view()) })
	}
}

// Root returns a view of the root node, if any.
func (tree *BalancedIndex) Root() (NodeView, bool) {
	if tree.root == nil {
		return NodeView{}, false
	}
	return tree.root.view(), true
}

// Len returns the number of records in the index.
func (tree *BalancedIndex) Len() int {
	return tree.size
}

// Height returns the height of the tree; 0 when empty.
func (tree *BalancedIndex) Height() int {
	return tree.getHeight(tree.root)
}
