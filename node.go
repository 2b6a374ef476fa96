// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mdstream

// Node is a node in an in-memory document tree built by [TreeBuilder].
type Node struct {
	tag      Tag
	text     string
	attrs    []Attribute
	parent   *Node
	children []*Node
}

// Attribute is a key/value pair set on a [Node].
type Attribute struct {
	Key   string
	Value string
}

// NewDocument returns a new empty root node.
func NewDocument() *Node {
	return &Node{tag: DocumentTag}
}

// Tag returns the node's tag or zero if the node is nil.
func (n *Node) Tag() Tag {
	if n == nil {
		return 0
	}
	return n.tag
}

// Text returns the content of a [TextTag] node.
// It returns the empty string for all other nodes.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// Attr returns the value of the attribute with the given key.
func (n *Node) Attr(key string) (value string, ok bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Attrs returns the node's attributes in the order they were first set.
// The caller must not modify the returned slice.
func (n *Node) Attrs() []Attribute {
	if n == nil {
		return nil
	}
	return n.attrs
}

// Parent returns the node's parent
// or nil if the node is a root or has not been appended yet.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// ChildCount returns the number of children the node has.
// Calling ChildCount on nil returns 0.
func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.children)
}

// Child returns the i'th child of the node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// LastChild returns the node's last child or nil if it has none.
func (n *Node) LastChild() *Node {
	if n.ChildCount() == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// TreeBuilder is a [Builder] that constructs an in-memory tree of [*Node].
type TreeBuilder struct{}

// CreateNode returns a new detached node.
func (TreeBuilder) CreateNode(tag Tag) *Node {
	return &Node{tag: tag}
}

// AppendChild appends child to parent's children.
// It panics if child already has a parent
// or if child is an ancestor of parent.
func (TreeBuilder) AppendChild(parent, child *Node) {
	if child.parent != nil {
		panic("mdstream: AppendChild called for a node that already has a parent")
	}
	for p := parent; p != nil; p = p.parent {
		if p == child {
			panic("mdstream: AppendChild would create a cycle")
		}
	}
	child.parent = parent
	parent.children = append(parent.children, child)
}

// AppendText appends a new [TextTag] node to parent.
func (b TreeBuilder) AppendText(parent *Node, text string) {
	b.AppendChild(parent, &Node{tag: TextTag, text: text})
}

// SetAttribute sets the value of the node's attribute,
// replacing any previous value for the key.
func (TreeBuilder) SetAttribute(node *Node, key, value string) {
	for i := range node.attrs {
		if node.attrs[i].Key == key {
			node.attrs[i].Value = value
			return
		}
	}
	node.attrs = append(node.attrs, Attribute{Key: key, Value: value})
}
