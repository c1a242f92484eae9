package markup

import "strings"

type Option func(*scanner)

// WithMaxDepth bounds element nesting. Past the limit the scanner stops
// descending and turns the remainder of the buffer into text on the
// offending node, which is flagged instead of failing.
func WithMaxDepth(n int) Option {
	return func(s *scanner) {
		s.maxDepth = n
	}
}

const defaultMaxDepth = 10000

// scriptPrefix triggers the raw-block rule. Detection is by this literal
// prefix alone, with no attribute or word-boundary inspection, so a tag
// like <scripture> is also treated as a script block. Known heuristic.
const scriptPrefix = "<script"

type scanner struct {
	src      string
	maxDepth int
}

// Parse scans src into a span tree. It never fails: malformed markup is
// kept, flagged on the affected nodes, and the root always reconstructs
// the input exactly.
func Parse(src string, opts ...Option) *Node {
	s := &scanner{src: src, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(s)
	}

	root := &Node{
		Type:      TypeRoot,
		Src:       src,
		SrcStart:  0,
		SrcEnd:    len(src) - 1,
		ContStart: 0,
		ContEnd:   len(src) - 1,
	}
	s.scan(root, 0, 0)
	return root
}

// scan fills target's children from pos onward, one activation per open
// element. It returns the offset at which the parent activation resumes:
// just past target's closing tag, or past the end of the buffer.
func (s *scanner) scan(target *Node, pos, depth int) int {
	src := s.src
	last := len(src) - 1
	cur := pos

	for cur <= last {
		lt := strings.IndexByte(src[cur:], '<')
		if lt < 0 {
			s.text(target, cur, last)
			return last + 1
		}
		lt += cur

		// Recovery: a '<' as the final character, a '<' with no '>'
		// anywhere after it, or the empty pair "<>" turn everything from
		// the cursor to the end of the buffer into text.
		if lt == last {
			s.text(target, cur, last)
			return last + 1
		}
		gt := strings.IndexByte(src[lt:], '>')
		if gt < 0 {
			s.text(target, cur, last)
			return last + 1
		}
		gt += lt
		if gt == lt+1 {
			s.text(target, cur, last)
			return last + 1
		}

		switch {
		case src[lt+1] == '/':
			if target.Type == TypeRoot {
				// A closing tag with nothing open. Keep its bytes as text
				// so the tree still covers the whole input.
				s.text(target, cur, gt)
				cur = gt + 1
				continue
			}
			s.text(target, cur, lt-1)
			target.ContEnd = lt - 1
			target.SrcEnd = gt
			return gt + 1

		case src[lt+1] == '!' && lt+3 <= last && src[lt+2] == '-' && src[lt+3] == '-':
			s.text(target, cur, lt-1)
			cur = s.rawBlock(target, lt, lt+4, "-->")

		case src[lt+1] == '!' || src[lt+1] == '?':
			s.text(target, cur, lt-1)
			target.AddChild(&Node{
				Type:      TypeDirective,
				Src:       src,
				SrcStart:  lt,
				SrcEnd:    gt,
				ContStart: gt + 1,
				ContEnd:   gt,
			})
			cur = gt + 1

		case src[gt-1] == '/':
			s.text(target, cur, lt-1)
			target.AddChild(&Node{
				Type:          TypeElement,
				Src:           src,
				SrcStart:      lt,
				SrcEnd:        gt,
				ContStart:     gt + 1,
				ContEnd:       gt,
				IsUnderscored: src[lt+1] == '_',
			})
			cur = gt + 1

		case strings.HasPrefix(src[lt:], scriptPrefix):
			s.text(target, cur, lt-1)
			cur = s.rawBlock(target, lt, lt+len(scriptPrefix), "</script>")

		default:
			s.text(target, cur, lt-1)
			child := &Node{
				Type:          TypeNode,
				Src:           src,
				SrcStart:      lt,
				SrcEnd:        -1,
				ContStart:     gt + 1,
				ContEnd:       -1,
				IsUnderscored: src[lt+1] == '_',
			}
			target.AddChild(child)

			if depth+1 > s.maxDepth {
				// Too deeply nested. Stop descending and swallow the rest
				// of the buffer as the child's text.
				s.text(child, gt+1, last)
				child.Errors = true
				child.ContEnd = last
				child.SrcEnd = last
				return last + 1
			}

			cur = s.scan(child, gt+1, depth+1)
			if child.SrcEnd < 0 {
				// Input ran out before a closing tag was found. The child
				// is kept, flagged, and extended to the end of the buffer.
				// Mismatched nesting is not rewound.
				child.Errors = true
				child.ContEnd = last
				child.SrcEnd = last
			}
		}
	}
	return last + 1
}

// text appends the run [start, end] as a Text child. Empty runs are
// dropped.
func (s *scanner) text(target *Node, start, end int) {
	if end < start {
		return
	}
	target.AddChild(&Node{
		Type:      TypeText,
		Src:       s.src,
		SrcStart:  start,
		SrcEnd:    end,
		ContStart: start,
		ContEnd:   end,
	})
}

// rawBlock emits an opaque CommentOrScript leaf starting at start. The
// terminator is searched from searchFrom; when it is missing the block
// extends to the end of the buffer and is flagged.
func (s *scanner) rawBlock(target *Node, start, searchFrom int, terminator string) int {
	last := len(s.src) - 1

	end := last
	missing := true
	if searchFrom <= len(s.src) {
		if idx := strings.Index(s.src[searchFrom:], terminator); idx >= 0 {
			end = searchFrom + idx + len(terminator) - 1
			missing = false
		}
	}

	target.AddChild(&Node{
		Type:      TypeCommentOrScript,
		Src:       s.src,
		SrcStart:  start,
		SrcEnd:    end,
		ContStart: start,
		ContEnd:   end,
		Errors:    missing,
	})
	return end + 1
}
