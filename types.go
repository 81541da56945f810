package axisml

// Name is a qualified name with a possible prefix like "soap:Body"
// or simply without prefix like "a"
type Name struct {
	Local  string
	Prefix string
}

func (n Name) String() string {
	if n.Prefix != "" {
		return n.Prefix + ":" + n.Local
	}
	return n.Local
}

// Attr is an attribute of an element.
// Only tokens of kind TokenStartElement carry attributes.
type Attr struct {
	Name  Name
	Value string
}

// TokenKind discriminates the token union produced by the Reader.
type TokenKind byte

const (
	TokenStartElement TokenKind = iota
	TokenEndElement
	TokenText
	TokenComment
	TokenCDATA
	TokenProcInst
	TokenDoctype
)

func (k TokenKind) String() string {
	switch k {
	case TokenStartElement:
		return "start-element"
	case TokenEndElement:
		return "end-element"
	case TokenText:
		return "text"
	case TokenComment:
		return "comment"
	case TokenCDATA:
		return "cdata"
	case TokenProcInst:
		return "proc-inst"
	case TokenDoctype:
		return "doctype"
	}
	return "unknown"
}

// Token represents the union of all possible token types
// and their respective information.
type Token struct {
	Kind TokenKind

	// only for TokenStartElement and TokenEndElement
	Name Name

	// only for TokenStartElement
	Attr        []Attr
	SelfClosing bool

	// only for TokenProcInst
	Target string

	// only for TokenText, TokenComment, TokenCDATA, TokenProcInst and TokenDoctype
	Value string
}
