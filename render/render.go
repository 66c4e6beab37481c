// CLAUDE:SUMMARY Renders dom query results as HTML, plain text or Markdown.
// Package render turns dom results into text for display.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"

	"github.com/hazyhaar/domkit/dom"
)

// Format names accepted by Write.
const (
	FormatHTML     = "html"
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// HTML renders every element of r, one per line.
func HTML(r dom.Result) (string, error) {
	parts := make([]string, 0, r.Len())
	for _, n := range r.List().Nodes() {
		var buf bytes.Buffer
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render: html: %w", err)
		}
		parts = append(parts, buf.String())
	}
	return strings.Join(parts, "\n"), nil
}

// Text returns the whitespace-collapsed text of every element of r, one
// per line.
func Text(r dom.Result) string {
	parts := make([]string, 0, r.Len())
	for _, n := range r.List().Nodes() {
		parts = append(parts, strings.Join(strings.Fields(dom.TextContent(n)), " "))
	}
	return strings.Join(parts, "\n")
}

// Markdown converts the elements of r to Markdown.
func Markdown(r dom.Result) (string, error) {
	src, err := HTML(r)
	if err != nil {
		return "", err
	}
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	md, err := conv.ConvertString(src)
	if err != nil {
		return "", fmt.Errorf("render: markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}

// Write renders r in format to w, followed by a newline.
func Write(w io.Writer, r dom.Result, format string) error {
	var (
		out string
		err error
	)
	switch format {
	case FormatHTML, "":
		out, err = HTML(r)
	case FormatText:
		out = Text(r)
	case FormatMarkdown:
		out, err = Markdown(r)
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
