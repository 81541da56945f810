package axisml

// Reader is a push cursor over in-memory markup text. Each call to Next
// advances by exactly one token and exposes it through the accessors.
// Only the fields relevant for the current token kind are rewritten on
// each step; other fields may retain previous values. Callers should thus
// inspect Kind first and only read the accessors relevant for that kind.
//
// A single Reader must not be stepped concurrently. Independent Readers
// are fully independent.
type Reader struct {
	buf         string
	pos         int
	kind        TokenKind
	name        Name
	value       string
	target      string
	attrs       []Attr
	depth       int
	selfClosing bool
	eof         bool
	preserveWS  bool
	onError     func(pos int)
}

// ReaderOption configures a Reader at construction time.
type ReaderOption func(*Reader)

// PreserveWhitespace makes the Reader emit whitespace-only character data
// as text tokens. By default such runs produce no token at all.
func PreserveWhitespace() ReaderOption {
	return func(r *Reader) {
		r.preserveWS = true
	}
}

// WithErrorHandler installs a diagnostic callback invoked with the byte
// position of input that no recognizer accepts. The Reader then skips one
// byte and continues; without a handler it skips silently. The callback
// never stops the parse.
func WithErrorHandler(fn func(pos int)) ReaderOption {
	return func(r *Reader) {
		r.onError = fn
	}
}

// NewReader creates a Reader over the given text.
func NewReader(text string, opts ...ReaderOption) *Reader {
	r := &Reader{buf: text}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Kind reports the kind of the current token.
func (r *Reader) Kind() TokenKind { return r.kind }

// Name reports the qualified name of the current start or end element.
func (r *Reader) Name() Name { return r.name }

// Value reports the text of the current text, comment, CDATA,
// processing-instruction or doctype token.
func (r *Reader) Value() string { return r.value }

// Target reports the target of the current processing instruction.
func (r *Reader) Target() string { return r.target }

// Attrs reports the attributes of the current start element, in
// declaration order. The slice is only meaningful while Kind is
// TokenStartElement.
func (r *Reader) Attrs() []Attr { return r.attrs }

// Depth reports the element nesting depth after the current token.
// A self-closing element counts as open until the next step.
func (r *Reader) Depth() int { return r.depth }

// SelfClosing reports whether the current token is a start element
// written as "<name/>". The Reader never emits a matching end token for
// it; the depth decrement happens at the start of the next step.
func (r *Reader) SelfClosing() bool { return r.selfClosing }

// EOF reports whether the input is exhausted.
func (r *Reader) EOF() bool { return r.eof }

// Pos reports the current byte position of the cursor.
func (r *Reader) Pos() int { return r.pos }

// Next advances to the next token and reports whether one is available.
// Once it returns false it returns false forever and EOF stays true.
//
// Input that no recognizer accepts is skipped one byte at a time (see
// WithErrorHandler); the stream is resynchronized, never aborted.
func (r *Reader) Next() bool {
	if r.eof {
		return false
	}
	if r.selfClosing {
		// deferred close of the previous "<name/>"
		r.depth--
		r.selfClosing = false
	}
	for {
		if m, ok := matchCharData(r.buf, r.pos); ok {
			r.pos = m.end
			if m.whitespace && !r.preserveWS {
				continue
			}
			r.kind = TokenText
			r.value = m.value
			return true
		}
		if m, ok := matchStartElement(r.buf, r.pos); ok {
			r.pos = m.end
			r.depth++
			r.kind = TokenStartElement
			r.name = m.name
			r.attrs = m.attrs
			r.selfClosing = m.selfClosing
			return true
		}
		if m, ok := matchEndElement(r.buf, r.pos); ok {
			r.pos = m.end
			r.depth--
			r.kind = TokenEndElement
			r.name = m.name
			return true
		}
		if m, ok := matchComment(r.buf, r.pos); ok {
			r.pos = m.end
			r.kind = TokenComment
			r.value = m.value
			return true
		}
		if m, ok := matchCDATA(r.buf, r.pos); ok {
			r.pos = m.end
			r.kind = TokenCDATA
			r.value = m.value
			return true
		}
		if m, ok := matchProcInst(r.buf, r.pos); ok {
			r.pos = m.end
			r.kind = TokenProcInst
			r.target = m.target
			r.value = m.value
			return true
		}
		if m, ok := matchDoctype(r.buf, r.pos); ok {
			r.pos = m.end
			r.kind = TokenDoctype
			r.value = m.value
			return true
		}
		if r.pos >= len(r.buf) {
			r.eof = true
			return false
		}
		if r.onError != nil {
			r.onError(r.pos)
		}
		r.pos++
	}
}

// Token snapshots the current token into a Token value.
func (r *Reader) Token() Token {
	t := Token{Kind: r.kind}
	switch r.kind {
	case TokenStartElement:
		t.Name = r.name
		t.Attr = r.attrs
		t.SelfClosing = r.selfClosing
	case TokenEndElement:
		t.Name = r.name
	case TokenProcInst:
		t.Target = r.target
		t.Value = r.value
	default:
		t.Value = r.value
	}
	return t
}
