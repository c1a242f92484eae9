// Package format renders span trees for human and machine consumption.
package format

import (
	"github.com/dhamidi/marq/markup"
)

type Encoder interface {
	Encode(node *markup.Node) error
}
