package markup

import (
	"strings"
	"testing"
)

func TestNodeTypeString(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want string
	}{
		{TypeRoot, "Root"},
		{TypeText, "Text"},
		{TypeNode, "Node"},
		{TypeElement, "Element"},
		{TypeDirective, "Directive"},
		{TypeCommentOrScript, "CommentOrScript"},
		{NodeType(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("NodeType(%d).String() = %q, want %q", tt.typ, got, tt.want)
			}
		})
	}
}

func TestNodeAddChild(t *testing.T) {
	parent := &Node{Type: TypeRoot}
	child1 := &Node{Type: TypeText}
	child2 := &Node{Type: TypeNode}

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.AddChild(nil)

	if len(parent.Children) != 2 {
		t.Errorf("expected 2 children, got %d", len(parent.Children))
	}
	if child1.Parent != parent || child2.Parent != parent {
		t.Error("children should point back at their parent")
	}
}

func TestNodeParentLinks(t *testing.T) {
	root := Parse(simpleDoc)

	if root.Parent != nil {
		t.Error("root should have no parent")
	}
	root.Walk(func(n *Node) bool {
		for _, child := range n.Children {
			if child.Parent != n {
				t.Errorf("%s child has wrong parent", child.Type)
			}
		}
		return true
	})
}

func TestTagAccessors(t *testing.T) {
	root := Parse(`<div class="x">y</div>`)
	div := root.Children[0]

	if tag, ok := div.TagStart(); !ok || tag != `<div class="x">` {
		t.Errorf("TagStart() = %q, %v, want %q, true", tag, ok, `<div class="x">`)
	}
	if tag, ok := div.TagEnd(); !ok || tag != "</div>" {
		t.Errorf("TagEnd() = %q, %v, want %q, true", tag, ok, "</div>")
	}

	text := div.Children[0]
	if _, ok := text.TagStart(); ok {
		t.Error("text node should have no TagStart")
	}
	if _, ok := text.TagEnd(); ok {
		t.Error("text node should have no TagEnd")
	}
	if _, ok := root.TagStart(); ok {
		t.Error("root should have no TagStart")
	}
}

func TestTagName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<div>x</div>", "div"},
		{`<div class="x">x</div>`, "div"},
		{"<br/>", "br"},
		{"<img src='a'/>", "img"},
		{"<_slot></_slot>", "_slot"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Parse(tt.input).Children[0].TagName(); got != tt.want {
				t.Errorf("TagName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"spaces and tabs", "\n  \t", true},
		{"plain text", "x", false},
		{"text with inner spaces", " x ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := Parse(tt.input).Children[0]
			if got := text.IsWhitespace(); got != tt.want {
				t.Errorf("IsWhitespace() = %v, want %v", got, tt.want)
			}
		})
	}

	// Only Text nodes can be whitespace.
	br := Parse("<br/>").Children[0]
	if br.IsWhitespace() {
		t.Error("Element should never be whitespace")
	}
}

func TestInnerTextIncludesRawBlocks(t *testing.T) {
	root := Parse("<p><!--c--></p>")
	if got := root.InnerText(); got != "<!--c-->" {
		t.Errorf("InnerText() = %q, want %q", got, "<!--c-->")
	}
}

func TestFirstChildOfType(t *testing.T) {
	root := Parse(simpleDoc)
	html := root.FirstChildOfType(TypeNode)
	if html == nil || html.TagName() != "html" {
		t.Fatal("expected html as first Node child")
	}
	if root.FirstChildOfType(TypeDirective) != nil {
		t.Error("expected no Directive child")
	}
}

func TestChildrenOfType(t *testing.T) {
	root := Parse("a<b>c</b>d<e/>f")
	if got := len(root.ChildrenOfType(TypeText)); got != 3 {
		t.Errorf("Text children = %d, want 3", got)
	}
	if got := len(root.ChildrenOfType(TypeElement)); got != 1 {
		t.Errorf("Element children = %d, want 1", got)
	}
}

func TestWalk(t *testing.T) {
	root := Parse("<a><b>x</b></a>")

	count := 0
	root.Walk(func(n *Node) bool {
		count++
		return true
	})
	// Root, a, b, text.
	if count != 4 {
		t.Errorf("visited %d nodes, want 4", count)
	}

	pruned := 0
	root.Walk(func(n *Node) bool {
		pruned++
		return n.Type == TypeRoot
	})
	// Root and a; a's subtree is skipped.
	if pruned != 2 {
		t.Errorf("visited %d nodes with pruning, want 2", pruned)
	}
}

func TestNodeString(t *testing.T) {
	root := Parse(`<meta charset="utf-8">`)
	out := root.String()

	if !strings.Contains(out, "Root") || !strings.Contains(out, "Node") {
		t.Errorf("String() missing node types:\n%s", out)
	}
	if !strings.Contains(out, "ERRORS") {
		t.Errorf("String() should mark flagged nodes:\n%s", out)
	}

	withSpans := root.StringWithPositions()
	if !strings.Contains(withSpans, "[0-") {
		t.Errorf("StringWithPositions() missing span offsets:\n%s", withSpans)
	}
}
