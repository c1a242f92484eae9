package lsp

import (
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/marq/markup"
)

const diagnosticSource = "marq"

// Diagnostics scans src and reports one warning per flagged node. The
// scanner never fails, so this never does either; a well-formed document
// yields an empty (non-nil) slice.
func Diagnostics(src string) []protocol.Diagnostic {
	tree := markup.Parse(src)
	index := markup.NewLineIndex(src)

	diagnostics := []protocol.Diagnostic{}
	tree.Walk(func(n *markup.Node) bool {
		if !n.Errors {
			return true
		}
		severity := protocol.DiagnosticSeverityWarning
		source := diagnosticSource
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: toProtocolPosition(index.At(n.SrcStart)),
				End:   toProtocolPosition(index.At(n.SrcEnd + 1)),
			},
			Severity: &severity,
			Source:   &source,
			Message:  describe(n),
		})
		return true
	})
	return diagnostics
}

func describe(n *markup.Node) string {
	switch n.Type {
	case markup.TypeNode:
		if name := n.TagName(); name != "" {
			return fmt.Sprintf("element <%s> has no closing tag", name)
		}
		return "element has no closing tag"
	case markup.TypeCommentOrScript:
		if strings.HasPrefix(n.SourceString(), "<!--") {
			return "comment is never terminated"
		}
		return "script block is never terminated"
	default:
		return "markup is not terminated"
	}
}

func toProtocolPosition(p markup.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: protocol.UInteger(p.Column - 1),
	}
}
