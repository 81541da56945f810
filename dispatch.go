package axisml

// EventKind discriminates the events produced by a Dispatcher.
type EventKind byte

const (
	EventStartDocument EventKind = iota
	EventEndDocument
	EventStartElement
	EventEndElement
	EventText
	EventComment
	EventCDATA
	EventProcInst
	EventDoctype
	EventParseError
)

func (k EventKind) String() string {
	switch k {
	case EventStartDocument:
		return "start-document"
	case EventEndDocument:
		return "end-document"
	case EventStartElement:
		return "start-element"
	case EventEndElement:
		return "end-element"
	case EventText:
		return "text"
	case EventComment:
		return "comment"
	case EventCDATA:
		return "cdata"
	case EventProcInst:
		return "proc-inst"
	case EventDoctype:
		return "doctype"
	case EventParseError:
		return "parse-error"
	}
	return "unknown"
}

// Event is the union of everything a Dispatcher reports. Consumers switch
// on Kind; only the fields relevant for that kind are set.
type Event struct {
	Kind EventKind

	// only for EventStartElement and EventEndElement
	Name Name

	// only for EventStartElement
	Attrs []Attr

	// only for EventProcInst
	Target string

	// only for EventText, EventComment, EventCDATA, EventProcInst and
	// EventDoctype
	Value string

	// element nesting depth at the event, 0 for the document envelope
	Depth int

	// byte position; for EventParseError the offending position
	Pos int
}

// Dispatcher drives a Reader over a whole input and maps every token to
// an Event handed to a single handler function. A self-closing element
// start additionally produces the matching end-element event, which the
// Reader itself never emits. Parse errors arrive as EventParseError and
// never stop the stream.
type Dispatcher struct {
	handle func(Event)
	opts   []ReaderOption
}

// NewDispatcher creates a Dispatcher calling h for every event. A nil h
// makes dispatching a no-op, never an error. Reader options apply to the
// Reader of every Dispatch call; an error handler installed here is
// replaced by the dispatcher's own EventParseError mapping.
func NewDispatcher(h func(Event), opts ...ReaderOption) *Dispatcher {
	return &Dispatcher{handle: h, opts: opts}
}

// Dispatch parses text to exhaustion, emitting the start-document and
// end-document envelope around the token events.
func (d *Dispatcher) Dispatch(text string) {
	emit := d.handle
	if emit == nil {
		emit = func(Event) {}
	}
	opts := make([]ReaderOption, 0, len(d.opts)+1)
	opts = append(opts, d.opts...)
	r := NewReader(text)
	opts = append(opts, WithErrorHandler(func(pos int) {
		emit(Event{Kind: EventParseError, Depth: r.Depth(), Pos: pos})
	}))
	for _, opt := range opts {
		opt(r)
	}

	emit(Event{Kind: EventStartDocument})
	for r.Next() {
		switch r.Kind() {
		case TokenStartElement:
			emit(Event{
				Kind:  EventStartElement,
				Name:  r.Name(),
				Attrs: r.Attrs(),
				Depth: r.Depth(),
				Pos:   r.Pos(),
			})
			if r.SelfClosing() {
				emit(Event{
					Kind:  EventEndElement,
					Name:  r.Name(),
					Depth: r.Depth() - 1,
					Pos:   r.Pos(),
				})
			}
		case TokenEndElement:
			emit(Event{Kind: EventEndElement, Name: r.Name(), Depth: r.Depth(), Pos: r.Pos()})
		case TokenText:
			emit(Event{Kind: EventText, Value: r.Value(), Depth: r.Depth(), Pos: r.Pos()})
		case TokenComment:
			emit(Event{Kind: EventComment, Value: r.Value(), Depth: r.Depth(), Pos: r.Pos()})
		case TokenCDATA:
			emit(Event{Kind: EventCDATA, Value: r.Value(), Depth: r.Depth(), Pos: r.Pos()})
		case TokenProcInst:
			emit(Event{Kind: EventProcInst, Target: r.Target(), Value: r.Value(), Depth: r.Depth(), Pos: r.Pos()})
		case TokenDoctype:
			emit(Event{Kind: EventDoctype, Value: r.Value(), Depth: r.Depth(), Pos: r.Pos()})
		}
	}
	emit(Event{Kind: EventEndDocument})
}
