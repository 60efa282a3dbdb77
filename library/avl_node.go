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

// AVLNode owns its record and both children exclusively.
type AVLNode struct {
	Record Record // Key() is Record.Key
	Height int    // 1 for a leaf
	Left   *AVLNode
	Right  *AVLNode
}

func (n *AVLNode) Key() string {
	return n.Record.Key
}

// NodeView is a read-only snapshot of one node, enough for a caller to draw
// the tree without touching its internals. Child keys are empty when the
// child is absent.
type NodeView struct {
	Key    string
	Label  string
	Left   string
	Right  string
	Height int
}

func (n *AVLNode) view() NodeView {
	v := NodeView{Key: n.Key(), Label: n.Record.Label(), Height: n.Height}
	if n.Left != nil {
		v.Left = n.Left.Key()
	}
	if n.Right != nil {
		v.Right = n.Right.Key()
	}
	return v
}
