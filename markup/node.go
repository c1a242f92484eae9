package markup

import (
	"strconv"
	"strings"
)

type NodeType int

const (
	TypeRoot NodeType = iota
	TypeText
	TypeNode
	TypeElement
	TypeDirective
	TypeCommentOrScript
)

var nodeTypeNames = map[NodeType]string{
	TypeRoot:            "Root",
	TypeText:            "Text",
	TypeNode:            "Node",
	TypeElement:         "Element",
	TypeDirective:       "Directive",
	TypeCommentOrScript: "CommentOrScript",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Node is a span over the shared source buffer Src. All offsets are
// inclusive byte offsets; a node with empty content has ContEnd ==
// ContStart-1. Nodes are immutable once Parse returns.
type Node struct {
	Type NodeType
	Src  string

	// Outer span: the node's full markup, opening tag through closing tag.
	SrcStart int
	SrcEnd   int

	// Inner span: the content between the tags. For Text and
	// CommentOrScript it coincides with the outer span.
	ContStart int
	ContEnd   int

	Children []*Node
	Parent   *Node

	// IsUnderscored is set when the tag name starts with '_', the
	// templating placeholder convention.
	IsUnderscored bool

	// Errors is set when no valid terminator was found for this node.
	Errors bool
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		child.Parent = n
		n.Children = append(n.Children, child)
	}
}

func (n *Node) FirstChildOfType(t NodeType) *Node {
	for _, child := range n.Children {
		if child.Type == t {
			return child
		}
	}
	return nil
}

func (n *Node) ChildrenOfType(t NodeType) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Type == t {
			result = append(result, child)
		}
	}
	return result
}

// Walk visits n and its descendants in document order. Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// SourceString returns the exact bytes of the node's outer span.
func (n *Node) SourceString() string {
	if n.SrcEnd < n.SrcStart {
		return ""
	}
	return n.Src[n.SrcStart : n.SrcEnd+1]
}

// InnerText concatenates the content of this node and all descendants in
// document order, skipping tag delimiters. Comment and script blocks are
// opaque, so their text is included verbatim.
func (n *Node) InnerText() string {
	var sb strings.Builder
	n.innerText(&sb)
	return sb.String()
}

func (n *Node) innerText(sb *strings.Builder) {
	if len(n.Children) == 0 {
		if n.ContEnd >= n.ContStart {
			sb.WriteString(n.Src[n.ContStart : n.ContEnd+1])
		}
		return
	}
	// A container contributes nothing beyond its children: every byte of
	// its content region is covered by a child span.
	for _, child := range n.Children {
		child.innerText(sb)
	}
}

// IsWhitespace reports whether n is a Text node whose content is empty or
// all whitespace.
func (n *Node) IsWhitespace() bool {
	if n.Type != TypeText {
		return false
	}
	return strings.TrimSpace(n.SourceString()) == ""
}

// TagStart returns the literal opening tag, from SrcStart up to the
// content start. Absent for types without tag delimiters (Root, Text,
// CommentOrScript).
func (n *Node) TagStart() (string, bool) {
	if n.ContStart <= n.SrcStart {
		return "", false
	}
	return n.Src[n.SrcStart:n.ContStart], true
}

// TagEnd returns the literal closing tag. Only Node-typed elements have
// one, and only when a terminator was actually found.
func (n *Node) TagEnd() (string, bool) {
	if n.Type != TypeNode || n.ContEnd >= n.SrcEnd {
		return "", false
	}
	return n.Src[n.ContEnd+1 : n.SrcEnd+1], true
}

// TagName returns the name of the opening tag, without delimiters,
// attributes or the self-closing slash. Empty for types without tags.
func (n *Node) TagName() string {
	tag, ok := n.TagStart()
	if !ok {
		return ""
	}
	tag = strings.TrimPrefix(tag, "<")
	end := len(tag)
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '/' || c == '>' {
			end = i
			break
		}
	}
	return tag[:end]
}

func (n *Node) String() string {
	return n.stringIndent(0, false)
}

func (n *Node) StringWithPositions() string {
	return n.stringIndent(0, true)
}

func (n *Node) stringIndent(indent int, showSpans bool) string {
	prefix := strings.Repeat("  ", indent)

	result := prefix + n.Type.String()
	if showSpans {
		result += " [" + strconv.Itoa(n.SrcStart) + "-" + strconv.Itoa(n.SrcEnd) +
			" (" + strconv.Itoa(n.ContStart) + "-" + strconv.Itoa(n.ContEnd) + ")]"
	}
	if tag, ok := n.TagStart(); ok {
		result += " " + tag
	}
	if len(n.Children) > 0 {
		result += " (" + strconv.Itoa(len(n.Children)) + " children)"
	}
	if n.Errors {
		result += " ERRORS"
	}
	result += "\n"

	for _, child := range n.Children {
		result += child.stringIndent(indent+1, showSpans)
	}
	return result
}
