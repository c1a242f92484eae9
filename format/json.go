package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/marq/markup"
)

type JSONEncoder struct {
	w io.Writer
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(node *markup.Node) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText(node *markup.Node) ([]byte, error) {
	return json.MarshalIndent(nodeToJSON(node), "", "  ")
}

type jsonNode struct {
	Type        string      `json:"type"`
	SrcStart    int         `json:"srcStart"`
	SrcEnd      int         `json:"srcEnd"`
	ContStart   int         `json:"contStart"`
	ContEnd     int         `json:"contEnd"`
	Tag         string      `json:"tag,omitempty"`
	Text        string      `json:"text,omitempty"`
	Underscored bool        `json:"underscored,omitempty"`
	Errors      bool        `json:"errors,omitempty"`
	Children    []*jsonNode `json:"children,omitempty"`
}

// nodeToJSON flattens a node into a parent-free record so the encoding
// cannot cycle through the back-references.
func nodeToJSON(n *markup.Node) *jsonNode {
	jn := &jsonNode{
		Type:        n.Type.String(),
		SrcStart:    n.SrcStart,
		SrcEnd:      n.SrcEnd,
		ContStart:   n.ContStart,
		ContEnd:     n.ContEnd,
		Underscored: n.IsUnderscored,
		Errors:      n.Errors,
	}

	if tag, ok := n.TagStart(); ok {
		jn.Tag = tag
	}

	switch n.Type {
	case markup.TypeText, markup.TypeCommentOrScript:
		jn.Text = n.SourceString()
	}

	for _, child := range n.Children {
		jn.Children = append(jn.Children, nodeToJSON(child))
	}
	return jn
}
