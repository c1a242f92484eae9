// Package markup provides a liberal, non-validating scanner for HTML and
// XML-like text.
//
// # Overview
//
// The scanner turns a raw buffer into a tree of spans over that buffer.
// Nothing is copied, decoded or normalized: every node is a pair of
// inclusive offsets into the one shared source string, and reassembling
// the root always yields the input byte for byte. It is built for
// templating engines that slice and recombine markup, where a strict
// parser that rejects real-world input would be useless.
//
// # Architecture
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Scanner   │────▶│  Span Tree  │
//	│  (string)   │     │ (recursive) │     │  (*Node)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │  Accessors  │
//	                                        │ (read-only) │
//	                                        └─────────────┘
//
// There is no separate tokenizer: classification and tree construction
// happen in a single left-to-right pass, one recursive activation per
// open element.
//
// # Node model
//
// Every node carries two inclusive spans: the outer span SrcStart..SrcEnd
// covering its full markup, and the inner span ContStart..ContEnd covering
// the content between its tags. A node with empty content uses
// ContEnd == ContStart-1. Children are disjoint, ordered, and together
// with interleaved Text nodes cover their parent's content region exactly.
//
// The node types form a closed set:
//
//	Root             the whole input
//	Text             a run of non-markup text
//	Node             an element with an open (and usually close) tag
//	Element          a self-closing element, <br/>
//	Directive        <!doctype ...> and <?...?> style tags
//	CommentOrScript  an opaque raw block: <!-- ... --> or <script>...</script>
//
// # Error tolerance
//
// Malformed input never makes Parse fail. A missing terminator flags the
// affected node with Errors=true and extends it to the end of the buffer;
// stray closing tags and broken tag pairs degrade into text. Mismatched
// nesting such as <a><b></a> is not rewound: the inner element is closed
// by the first closing tag seen, and enclosing elements left open at end
// of input are flagged.
//
// Two deliberate heuristics are preserved from the scanner's lineage: a
// tag is self-closing only when the character immediately before '>' is
// '/', and script blocks are detected by the literal prefix "<script"
// alone, which also captures unrelated tags sharing that prefix.
//
// # Concurrency
//
// Parse is synchronous and single-threaded. The returned tree is never
// mutated afterwards, so any number of goroutines may read it
// concurrently.
package markup
