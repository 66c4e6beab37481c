package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// fixtureHTML has seven divs, five of them under the section.
const fixtureHTML = `<!DOCTYPE html>
<html>
<head><title>HTML</title></head>
<body>
<section class="foo">
	<div id="first"></div>
	<div></div>
	<div id="identity"></div>
	<div></div>
	<div id="last"></div>
</section>
<div class="outside"></div>
<div class="outside"></div>
</body>
</html>`

func fixture(t *testing.T, opts ...Option) *Document {
	t.Helper()
	d, err := ParseString(fixtureHTML, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func bodyOf(t *testing.T, d *Document) *html.Node {
	t.Helper()
	body := d.Root().Child("body").Node()
	if body == nil {
		t.Fatal("no body")
	}
	return body
}

func sectionOf(t *testing.T, d *Document) *html.Node {
	t.Helper()
	sec := d.Root().Child("body").Child("section").Node()
	if sec == nil {
		t.Fatal("no section")
	}
	return sec
}

func divsOf(t *testing.T, d *Document) *List {
	t.Helper()
	divs := d.Child(sectionOf(t, d), "div").Group()
	if divs == nil {
		t.Fatal("section.div is not plural")
	}
	return divs
}

func mustFind(t *testing.T, d *Document, selector string) Result {
	t.Helper()
	r, err := d.Find(selector)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

// byIdentity compares nodes by pointer, not by content.
var byIdentity = cmp.Comparer(func(a, b *html.Node) bool { return a == b })

func newElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}
