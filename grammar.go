package axisml

import "strings"

// The token recognizers. Each is a matcher over (buf, pos) that either
// returns its structured result plus the position just past the consumed
// span, or reports failure without moving. The Reader owns recovery; a
// recognizer never skips bad input on its own. An incomplete construct
// at the end of the buffer is a failure, not a partial match.

func isWhitespace(b byte) bool {
	return b <= ' '
}

var seps = generateTable()

func generateTable() ['>' + 1]bool {
	var s ['>' + 1]bool
	s['\t'] = true
	s['\n'] = true
	s['\r'] = true
	s[' '] = true
	s['/'] = true
	s[':'] = true
	s['='] = true
	s['>'] = true
	return s
}

func isSeparator(b byte) bool {
	return int(b) < len(seps) && seps[b]
}

func skipWhitespaces(buf string, pos int) int {
	for pos < len(buf) && isWhitespace(buf[pos]) {
		pos++
	}
	return pos
}

// readSimpleName consumes a single name part up to the next separator.
// The separator itself is not consumed.
func readSimpleName(buf string, pos int) (string, int, bool) {
	i := pos
	for i < len(buf) {
		b := buf[i]
		if isSeparator(b) || b == '<' || b == '\'' || b == '"' || b == '?' || b == '!' {
			break
		}
		i++
	}
	if i == pos {
		return "", pos, false
	}
	return buf[pos:i], i, true
}

// readName consumes a qualified name with an optional "prefix:" part.
func readName(buf string, pos int) (Name, int, bool) {
	localOrPrefix, i, ok := readSimpleName(buf, pos)
	if !ok {
		return Name{}, pos, false
	}
	if i < len(buf) && buf[i] == ':' {
		local, j, ok := readSimpleName(buf, i+1)
		if !ok {
			return Name{}, pos, false
		}
		return Name{Local: local, Prefix: localOrPrefix}, j, true
	}
	return Name{Local: localOrPrefix}, i, true
}

type textMatch struct {
	value      string
	whitespace bool
	end        int
}

// matchCharData consumes character data up to the next '<' or the end of
// the buffer. Fails at end of buffer and on a leading '<'.
func matchCharData(buf string, pos int) (textMatch, bool) {
	if pos >= len(buf) || buf[pos] == '<' {
		return textMatch{}, false
	}
	i := pos
	ws := true
	for i < len(buf) && buf[i] != '<' {
		ws = ws && isWhitespace(buf[i])
		i++
	}
	return textMatch{value: buf[pos:i], whitespace: ws, end: i}, true
}

type startMatch struct {
	name        Name
	attrs       []Attr
	selfClosing bool
	end         int
}

// matchStartElement consumes '<' Name (Attr)* S? ('>'|'/>').
func matchStartElement(buf string, pos int) (startMatch, bool) {
	if pos >= len(buf) || buf[pos] != '<' {
		return startMatch{}, false
	}
	name, i, ok := readName(buf, pos+1)
	if !ok {
		return startMatch{}, false
	}
	var attrs []Attr
	for {
		i = skipWhitespaces(buf, i)
		if i >= len(buf) {
			return startMatch{}, false
		}
		switch buf[i] {
		case '>':
			return startMatch{name: name, attrs: attrs, end: i + 1}, true
		case '/':
			if i+1 < len(buf) && buf[i+1] == '>' {
				return startMatch{name: name, attrs: attrs, selfClosing: true, end: i + 2}, true
			}
			return startMatch{}, false
		default:
			attr, j, ok := readAttr(buf, i)
			if !ok {
				return startMatch{}, false
			}
			attrs = append(attrs, attr)
			i = j
		}
	}
}

// readAttr consumes a single Name '=' quoted-value attribute. After it
// returns, the position is just past the closing single or double quote.
func readAttr(buf string, pos int) (Attr, int, bool) {
	name, i, ok := readName(buf, pos)
	if !ok {
		return Attr{}, pos, false
	}
	i = skipWhitespaces(buf, i)
	if i >= len(buf) || buf[i] != '=' {
		return Attr{}, pos, false
	}
	i = skipWhitespaces(buf, i+1)
	if i >= len(buf) || (buf[i] != '"' && buf[i] != '\'') {
		return Attr{}, pos, false
	}
	quote := buf[i]
	i++
	k := strings.IndexByte(buf[i:], quote)
	if k < 0 {
		return Attr{}, pos, false
	}
	return Attr{Name: name, Value: buf[i : i+k]}, i + k + 1, true
}

type endMatch struct {
	name Name
	end  int
}

// matchEndElement consumes '</' Name S? '>'.
func matchEndElement(buf string, pos int) (endMatch, bool) {
	if !strings.HasPrefix(buf[pos:], "</") {
		return endMatch{}, false
	}
	name, i, ok := readName(buf, pos+2)
	if !ok {
		return endMatch{}, false
	}
	i = skipWhitespaces(buf, i)
	if i >= len(buf) || buf[i] != '>' {
		return endMatch{}, false
	}
	return endMatch{name: name, end: i + 1}, true
}

type dataMatch struct {
	value string
	end   int
}

// matchComment consumes '<!--' text '-->'.
func matchComment(buf string, pos int) (dataMatch, bool) {
	if !strings.HasPrefix(buf[pos:], "<!--") {
		return dataMatch{}, false
	}
	i := pos + 4
	k := strings.Index(buf[i:], "-->")
	if k < 0 {
		return dataMatch{}, false
	}
	return dataMatch{value: buf[i : i+k], end: i + k + 3}, true
}

// matchCDATA consumes '<![CDATA[' text ']]>'.
func matchCDATA(buf string, pos int) (dataMatch, bool) {
	if !strings.HasPrefix(buf[pos:], "<![CDATA[") {
		return dataMatch{}, false
	}
	i := pos + 9
	k := strings.Index(buf[i:], "]]>")
	if k < 0 {
		return dataMatch{}, false
	}
	return dataMatch{value: buf[i : i+k], end: i + k + 3}, true
}

type piMatch struct {
	target string
	value  string
	end    int
}

// matchProcInst consumes '<?' Target S text '?>'. The text is kept with
// surrounding whitespace trimmed, the way the target/instruction split is
// usually consumed.
func matchProcInst(buf string, pos int) (piMatch, bool) {
	if !strings.HasPrefix(buf[pos:], "<?") {
		return piMatch{}, false
	}
	target, i, ok := readSimpleName(buf, pos+2)
	if !ok {
		return piMatch{}, false
	}
	k := strings.Index(buf[i:], "?>")
	if k < 0 {
		return piMatch{}, false
	}
	value := trimWhitespace(buf[i : i+k])
	return piMatch{target: target, value: value, end: i + k + 2}, true
}

// matchDoctype consumes '<!DOCTYPE' body '>', balancing the '[' ... ']'
// internal subset so a '>' inside markup declarations does not terminate
// the match early.
func matchDoctype(buf string, pos int) (dataMatch, bool) {
	if !strings.HasPrefix(buf[pos:], "<!DOCTYPE") {
		return dataMatch{}, false
	}
	i := pos + 9
	depth := 0
	for i < len(buf) {
		switch buf[i] {
		case '[':
			depth++
		case ']':
			depth--
		case '>':
			if depth <= 0 {
				return dataMatch{value: trimWhitespace(buf[pos+9 : i]), end: i + 1}, true
			}
		}
		i++
	}
	return dataMatch{}, false
}

func trimWhitespace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}
