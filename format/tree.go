package format

import (
	"io"

	"github.com/dhamidi/marq/markup"
)

type TreeEncoder struct {
	w     io.Writer
	spans bool
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

// NewTreeEncoderWithSpans includes outer and inner span offsets next to
// each node.
func NewTreeEncoderWithSpans(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w, spans: true}
}

func (e *TreeEncoder) Encode(node *markup.Node) error {
	var out string
	if e.spans {
		out = node.StringWithPositions()
	} else {
		out = node.String()
	}
	_, err := io.WriteString(e.w, out)
	return err
}
