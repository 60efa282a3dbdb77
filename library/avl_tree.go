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

import "strings"

// BalancedIndex is an AVL tree of records keyed by Record.Key, with an
// AuthorIndex kept in step with every insert and delete.
//
// BalancedIndex is not safe for concurrent use. Callers sharing one across
// goroutines must guard it, tree and author index together, with a single
// lock.
type BalancedIndex struct {
	root    *AVLNode
	authors *AuthorIndex
	size    int
}

func NewBalancedIndex() *BalancedIndex {
	return &BalancedIndex{authors: NewAuthorIndex()}
}

func (tree *BalancedIndex) getHeight(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return node.Height
}

func (tree *BalancedIndex) updateHeight(node *AVLNode) {
	node.Height = max(tree.getHeight(node.Left), tree.getHeight(node.Right)) + 1
}

func (tree *BalancedIndex) getBalanceFactor(node *AVLNode) int {
	if node == nil {
		return 0
	}
	return tree.getHeight(node.Left) - tree.getHeight(node.Right)
}

func (tree *BalancedIndex) rotateLeft(node *AVLNode) *AVLNode {
	if node == nil || node.Right == nil {
		return node
	}

	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	// node is now below pivot, so its height must be fixed first
	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *BalancedIndex) rotateRight(node *AVLNode) *AVLNode {
	if node == nil || node.Left == nil {
		return node
	}

	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// Insert adds rec to the index, or replaces the record stored under the
// same key. It reports whether an existing record was replaced. A record
// without an AuthorID gets one derived from its author name.
func (tree *BalancedIndex) Insert(rec Record) (bool, error) {
	if rec.AuthorID == "" {
		rec.AuthorID = AuthorIDFor(rec.AuthorName)
	}
	if err := rec.Validate(); err != nil {
		return false, err
	}

	old, exists := tree.SearchByKey(rec.Key)
	tree.root = tree.insertRecursive(tree.root, rec)

	if exists {
		tree.authors.onReplace(old, rec)
		return true, nil
	}
	tree.size++
	tree.authors.onInsert(rec)
	return false, nil
}

func (tree *BalancedIndex) insertRecursive(node *AVLNode, rec Record) *AVLNode {
	if node == nil {
		return &AVLNode{Record: rec, Height: 1}
	}

	key := rec.Key
	if key < node.Key() {
		node.Left = tree.insertRecursive(node.Left, rec)
	} else if key > node.Key() {
		node.Right = tree.insertRecursive(node.Right, rec)
	} else {
		// Same key: update in place, shape is unchanged
		node.Record = rec
		return node
	}

	tree.updateHeight(node)

	balanceFactor := tree.getBalanceFactor(node)
	if balanceFactor > 1 {
		if key < node.Left.Key() {
			return tree.rotateRight(node)
		}
		// Left-Right case
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	} else if balanceFactor < -1 {
		if key > node.Right.Key() {
			return tree.rotateLeft(node)
		}
		// Right-Left case
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// Delete removes the record stored under key and returns it. Deleting an
// absent key changes nothing and reports false.
func (tree *BalancedIndex) Delete(key string) (Record, bool) {
	rec, ok := tree.SearchByKey(key)
	if !ok {
		return Record{}, false
	}

	tree.root = tree.deleteRecursive(tree.root, key)
	tree.size--
	tree.authors.onDelete(rec)
	return rec, true
}

func (tree *BalancedIndex) deleteRecursive(node *AVLNode, key string) *AVLNode {
	if node == nil {
		return nil
	}

	if key < node.Key() {
		node.Left = tree.deleteRecursive(node.Left, key)
	} else if key > node.Key() {
		node.Right = tree.deleteRecursive(node.Right, key)
	} else {
		// Case 1: No children
		if node.Left == nil && node.Right == nil {
			return nil
		}
		// Case 2: One child (right)
		if node.Left == nil {
			return node.Right
		}
		// Case 3: One child (left)
		if node.Right == nil {
			return node.Left
		}
		// Case 4: Two children, pull up the in-order successor
		successor := tree.findMin(node.Right)
		node.Record = successor.Record
		node.Right = tree.deleteRecursive(node.Right, successor.Key())
	}

	tree.updateHeight(node)
	return tree.rebalance(node)
}

func (tree *BalancedIndex) findMin(node *AVLNode) *AVLNode {
	for node.Left != nil {
		node = node.Left
	}
	return node
}

func (tree *BalancedIndex) rebalance(node *AVLNode) *AVLNode {
	balanceFactor := tree.getBalanceFactor(node)

	// Left-heavy
	if balanceFactor > 1 {
		if tree.getBalanceFactor(node.Left) >= 0 {
			return tree.rotateRight(node)
		}
		node.Left = tree.rotateLeft(node.Left)
		return tree.rotateRight(node)
	}

	// Right-heavy
	if balanceFactor < -1 {
		if tree.getBalanceFactor(node.Right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.Right = tree.rotateRight(node.Right)
		return tree.rotateLeft(node)
	}

	return node
}

// SearchByKey returns the record stored under key.
func (tree *BalancedIndex) SearchByKey(key string) (Record, bool) {
	node := searchNode(tree.root, key)
	if node == nil {
		return Record{}, false
	}
	return node.Record, true
}

func searchNode(node *AVLNode, key string) *AVLNode {
	for node != nil {
		if key < node.Key() {
			node = node.Left
		} else if key > node.Key() {
			node = node.Right
		} else {
			return node
		}
	}
	return nil
}

// SearchByTitle returns every record whose title equals title, ignoring
// case, in ascending key order. Titles are not ordered in the tree, so this
// visits every node.
func (tree *BalancedIndex) SearchByTitle(title string) []Record {
	var results []Record
	for rec := range tree.All() {
		if strings.EqualFold(rec.Title, title) {
			results = append(results, rec)
		}
	}
	return results
}

// QueryByAuthorName resolves name through the author index. See
// AuthorIndex.QueryByAuthorName.
func (tree *BalancedIndex) QueryByAuthorName(name string) ([]Record, bool) {
	return tree.authors.QueryByAuthorName(name)
}

// Authors exposes the author index for read-only queries.
func (tree *BalancedIndex) Authors() *AuthorIndex {
	return tree.authors
}

// prefixSearch appends, in ascending order, every record in the subtree
// whose key starts with prefix. Matching keys form one contiguous run
// beginning at prefix, so subtrees outside that run are skipped.
func prefixSearch(node *AVLNode, prefix string, results *[]Record) {
	if node == nil {
		return
	}

	key := node.Key()
	matches := strings.HasPrefix(key, prefix)

	if key >= prefix {
		prefixSearch(node.Left, prefix, results)
	}

	if matches {
		*results = append(*results, node.Record)
	}

	if key < prefix || matches {
		prefixSearch(node.Right, prefix, results)
	}
}

// SearchByKeyPrefix returns the records whose key starts with prefix, such
// as every ISBN from one registrant group.
func (tree *BalancedIndex) SearchByKeyPrefix(prefix string) []Record {
	var results []Record
	prefixSearch(tree.root, prefix, &results)
	return results
}
