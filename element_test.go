package pageaudit_test

import (
	"testing"

	"github.com/fwojciec/pageaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree returns the root of <body><div id=a><p>one</p><div id=b><p>two</p></div></div><p>three</p></body>.
func buildTree() *pageaudit.Element {
	b := pageaudit.NewTreeBuilder()
	b.StartTag("body", nil)
	b.StartTag("div", []pageaudit.Attribute{{Name: "id", Value: "a"}})
	b.StartTag("p", nil)
	b.Text("one")
	b.EndTag("p")
	b.StartTag("div", []pageaudit.Attribute{{Name: "id", Value: "b"}})
	b.StartTag("p", nil)
	b.Text("two")
	b.EndTag("p")
	b.EndTag("div")
	b.EndTag("div")
	b.StartTag("p", nil)
	b.Text("three")
	b.EndTag("p")
	b.EndTag("body")
	return b.Root()
}

func TestElement_FindAll(t *testing.T) {
	t.Parallel()

	t.Run("returns matches in document order", func(t *testing.T) {
		t.Parallel()

		ps := buildTree().FindAll("p")

		require.Len(t, ps, 3)
		for _, p := range ps {
			assert.Equal(t, "p", p.Tag)
		}
		assert.Equal(t, "one", ps[0].TextContent())
		assert.Equal(t, "two", ps[1].TextContent())
		assert.Equal(t, "three", ps[2].TextContent())
	})

	t.Run("visits ancestors before descendants", func(t *testing.T) {
		t.Parallel()

		divs := buildTree().FindAll("div")

		require.Len(t, divs, 2)
		assert.Equal(t, "a", divs[0].Attr("id"))
		assert.Equal(t, "b", divs[1].Attr("id"))
	})

	t.Run("excludes the receiver", func(t *testing.T) {
		t.Parallel()

		outer := buildTree().FindFirst("div")
		require.NotNil(t, outer)

		divs := outer.FindAll("div")

		require.Len(t, divs, 1)
		assert.Equal(t, "b", divs[0].Attr("id"))
	})

	t.Run("returns nil without matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, buildTree().FindAll("table"))
	})
}

func TestElement_FindFirst(t *testing.T) {
	t.Parallel()

	t.Run("returns first match in document order", func(t *testing.T) {
		t.Parallel()

		p := buildTree().FindFirst("p")

		require.NotNil(t, p)
		assert.Equal(t, "one", p.TextContent())
		assert.Equal(t, "div", p.Parent().Tag)
	})

	t.Run("returns nil without match", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, buildTree().FindFirst("span"))
	})
}

func TestElement_TextContent(t *testing.T) {
	t.Parallel()

	t.Run("returns raw text of a leaf unchanged", func(t *testing.T) {
		t.Parallel()

		el := pageaudit.NewElement("p", nil)
		el.AppendChild(pageaudit.Text("  spaced \n\t text  "))

		assert.Equal(t, "  spaced \n\t text  ", el.TextContent())
	})

	t.Run("concatenates nested text without adding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "onetwothree", buildTree().TextContent())
	})

	t.Run("br contributes a newline", func(t *testing.T) {
		t.Parallel()

		b := pageaudit.NewTreeBuilder()
		b.StartTag("h1", nil)
		b.Text("Fresh")
		b.StartTag("br", nil)
		b.Text("Water")
		b.EndTag("h1")

		assert.Equal(t, "Fresh\nWater", b.Root().FindFirst("h1").TextContent())
	})
}

func TestElement_ClassTokens(t *testing.T) {
	t.Parallel()

	el := pageaudit.NewElement("img", map[string]string{"class": "  Hero-Image  wide "})

	assert.Equal(t, []string{"hero-image", "wide"}, el.ClassTokens())
}

func TestElement_HasAttr(t *testing.T) {
	t.Parallel()

	el := pageaudit.NewElement("script", map[string]string{"defer": ""})

	assert.True(t, el.HasAttr("defer"))
	assert.False(t, el.HasAttr("async"))
	assert.Equal(t, "", el.Attr("async"))
}

func TestNormalizeSpace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", pageaudit.NormalizeSpace("  a \n b\t\tc  "))
	assert.Equal(t, "", pageaudit.NormalizeSpace(" \n "))
}
