package axisml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTreeShape(t *testing.T) {
	// given
	doc := BuildTree(`<book><title lang="en">XML</title><description/></book>`)

	// then
	assert.Equal(t, NodeDocument, doc.Kind)
	assert.Nil(t, doc.Parent)
	assert.Equal(t, 1, len(doc.Children))

	book := doc.Children[0]
	assert.Equal(t, NodeElement, book.Kind)
	assert.Equal(t, "book", book.Name.Local)
	assert.Same(t, doc, book.Parent)
	assert.Equal(t, 2, len(book.Children))

	title := book.Children[0]
	assert.Equal(t, "title", title.Name.Local)
	assert.Same(t, book, title.Parent)
	assert.Equal(t, 1, len(title.Attrs))
	lang := title.Attrs[0]
	assert.Equal(t, NodeAttribute, lang.Kind)
	assert.Equal(t, "lang", lang.Name.Local)
	assert.Equal(t, "en", lang.Value)
	assert.Same(t, title, lang.Parent)

	text := title.Children[0]
	assert.Equal(t, NodeText, text.Kind)
	assert.Equal(t, "XML", text.Value)

	description := book.Children[1]
	assert.Equal(t, "description", description.Name.Local)
	assert.Empty(t, description.Children)
}

func TestBuildTreeAttributeOrder(t *testing.T) {
	// given
	doc := BuildTree(`<a z="1" y="2" x="3"/>`)

	// then: declaration order, not lexical order
	a := doc.Children[0]
	var names []string
	for _, attr := range a.Attrs {
		names = append(names, attr.Name.Local)
	}
	assert.Equal(t, []string{"z", "y", "x"}, names)
}

func TestBuildTreeCDATABecomesText(t *testing.T) {
	// given
	doc := BuildTree("<s><![CDATA[<raw>]]></s>")

	// then
	s := doc.Children[0]
	assert.Equal(t, 1, len(s.Children))
	assert.Equal(t, NodeText, s.Children[0].Kind)
	assert.Equal(t, "<raw>", s.Children[0].Value)
}

func TestBuildTreeMultipleTopLevelNodes(t *testing.T) {
	// given
	doc := BuildTree(`<?xml version="1.0"?><!--lead--><root/>`)

	// then
	assert.Equal(t, 3, len(doc.Children))
	assert.Equal(t, NodeProcInst, doc.Children[0].Kind)
	assert.Equal(t, "xml", doc.Children[0].Name.Local)
	assert.Equal(t, NodeComment, doc.Children[1].Kind)
	assert.Equal(t, NodeElement, doc.Children[2].Kind)
}

func TestBuildTreeToleratesStrayEndTag(t *testing.T) {
	// given
	doc := BuildTree("</oops><a/>")

	// then
	assert.Equal(t, 1, len(doc.Children))
	assert.Equal(t, "a", doc.Children[0].Name.Local)
}

func TestBuildTreeClosesOpenElementsAtEOF(t *testing.T) {
	// given
	doc := BuildTree("<a><b>text")

	// then
	a := doc.Children[0]
	assert.Equal(t, "a", a.Name.Local)
	b := a.Children[0]
	assert.Equal(t, "b", b.Name.Local)
	assert.Equal(t, "text", b.Children[0].Value)
}

func TestBuildTreeIgnoresWhitespaceByDefault(t *testing.T) {
	// given
	doc := BuildTree("<a>\n  <b/>\n</a>")

	// then
	a := doc.Children[0]
	assert.Equal(t, 1, len(a.Children))
	assert.Equal(t, NodeElement, a.Children[0].Kind)
}

func TestHandBuiltTreeLinks(t *testing.T) {
	// given
	child := NewElement("child")
	root := NewElement("root").SetAttr("id", "1").Append(child, NewText("tail"))

	// then
	assert.Same(t, root, child.Parent)
	assert.Same(t, root, root.Attrs[0].Parent)
	assert.Equal(t, "tail", root.Children[1].Value)
	assert.Nil(t, root.Parent)
}

func TestNodeString(t *testing.T) {
	assert.Equal(t, "<a>", NewElement("a").String())
	assert.Equal(t, `"hi"`, NewText("hi").String())
	e := NewElement("a").SetAttr("k", "v")
	assert.Equal(t, `@k="v"`, e.Attrs[0].String())
}
