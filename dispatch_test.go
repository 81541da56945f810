package axisml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectEvents(text string, opts ...ReaderOption) []Event {
	var events []Event
	NewDispatcher(func(ev Event) {
		events = append(events, ev)
	}, opts...).Dispatch(text)
	return events
}

func TestDispatchSelfClosingSynthesizesEnd(t *testing.T) {
	// given / when: one reader token must become two element events
	events := collectEvents("<a/>")

	// then
	assert.Equal(t, 4, len(events))
	assert.Equal(t, EventStartDocument, events[0].Kind)
	assert.Equal(t, EventStartElement, events[1].Kind)
	assert.Equal(t, Name{Local: "a"}, events[1].Name)
	assert.Equal(t, EventEndElement, events[2].Kind)
	assert.Equal(t, Name{Local: "a"}, events[2].Name)
	assert.Equal(t, EventEndDocument, events[3].Kind)
}

func TestDispatchDepthSequence(t *testing.T) {
	// given / when
	events := collectEvents("<a><b/><c/></a>")

	// then: start(a), start(b), end(b), start(c), end(c), end(a)
	var kinds []EventKind
	var depths []int
	for _, ev := range events[1 : len(events)-1] {
		kinds = append(kinds, ev.Kind)
		depths = append(depths, ev.Depth)
	}
	assert.Equal(t, []EventKind{
		EventStartElement, EventStartElement, EventEndElement,
		EventStartElement, EventEndElement, EventEndElement,
	}, kinds)
	assert.Equal(t, []int{1, 2, 1, 2, 1, 0}, depths)
}

func TestDispatchDocumentEnvelope(t *testing.T) {
	// given / when: even empty input gets the envelope
	events := collectEvents("")

	// then
	assert.Equal(t, []Event{
		{Kind: EventStartDocument},
		{Kind: EventEndDocument},
	}, events)
}

func TestDispatchAllKinds(t *testing.T) {
	// given
	doc := `<?xml version="1.0"?><!DOCTYPE a><a>hi<!--c--><![CDATA[d]]></a>`

	// when
	events := collectEvents(doc)

	// then
	var kinds []EventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []EventKind{
		EventStartDocument,
		EventProcInst,
		EventDoctype,
		EventStartElement,
		EventText,
		EventComment,
		EventCDATA,
		EventEndElement,
		EventEndDocument,
	}, kinds)
	assert.Equal(t, "xml", events[1].Target)
	assert.Equal(t, `version="1.0"`, events[1].Value)
	assert.Equal(t, "hi", events[4].Value)
	assert.Equal(t, "c", events[5].Value)
	assert.Equal(t, "d", events[6].Value)
}

func TestDispatchParseErrorEvents(t *testing.T) {
	// given / when
	events := collectEvents("<a>&bad<")

	// then: the stream resynchronizes and still closes the document
	var errs []Event
	for _, ev := range events {
		if ev.Kind == EventParseError {
			errs = append(errs, ev)
		}
	}
	assert.NotEmpty(t, errs)
	for _, ev := range errs {
		assert.GreaterOrEqual(t, ev.Pos, 3)
		assert.Less(t, ev.Pos, len("<a>&bad<"))
	}
	assert.Equal(t, EventEndDocument, events[len(events)-1].Kind)
}

func TestDispatchNilHandler(t *testing.T) {
	// given
	d := NewDispatcher(nil)

	// when / then: missing handlers are no-ops, never errors
	assert.NotPanics(t, func() {
		d.Dispatch("<a><b/>broken<</a>")
	})
}

func TestDispatchPreservesWhitespaceOption(t *testing.T) {
	// given / when
	ignored := collectEvents("<a>  </a>")
	preserved := collectEvents("<a>  </a>", PreserveWhitespace())

	// then
	countText := func(events []Event) int {
		n := 0
		for _, ev := range events {
			if ev.Kind == EventText {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 0, countText(ignored))
	assert.Equal(t, 1, countText(preserved))
}
