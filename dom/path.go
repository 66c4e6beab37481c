package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

var (
	// ErrEmptyPath is returned for a path with no tokens or an empty token.
	ErrEmptyPath = errors.New("empty path")
	// ErrNullMember is returned when an intermediate member is nil or absent.
	ErrNullMember = errors.New("null or absent member")
	// ErrNotObject is returned when an intermediate member has no members.
	ErrNotObject = errors.New("member is not an object")
	// ErrUnknownMember is returned when setting or calling a member that does not exist.
	ErrUnknownMember = errors.New("unknown member")
	// ErrReadOnly is returned when setting a member that cannot be written.
	ErrReadOnly = errors.New("member is read-only")
	// ErrBadArgument is returned when a method receives arguments it cannot use.
	ErrBadArgument = errors.New("bad argument")
)

// Path is a pre-parsed member path such as parentNode.tagName.
type Path []string

// ParsePath splits a dot-separated member path.
func ParsePath(expr string) (Path, error) {
	if expr == "" {
		return nil, &PathError{Index: -1, Err: ErrEmptyPath}
	}
	p := Path(strings.Split(expr, "."))
	for i, tok := range p {
		if tok == "" {
			return nil, &PathError{Path: p, Index: i, Err: ErrEmptyPath}
		}
	}
	return p, nil
}

// MustPath is ParsePath that panics on error, for literal paths.
func MustPath(expr string) Path {
	p, err := ParsePath(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Path) String() string { return strings.Join(p, ".") }

func (p Path) leaf() string { return p[len(p)-1] }

// PathError reports the token at which resolving a Path failed.
type PathError struct {
	Path  Path
	Index int // token index, -1 when the path itself is malformed
	Err   error
}

func (e *PathError) Error() string {
	if e.Index < 0 || e.Index >= len(e.Path) {
		return fmt.Sprintf("dom: path %q: %v", e.Path.String(), e.Err)
	}
	return fmt.Sprintf("dom: path %q at %q: %v", e.Path.String(), e.Path[e.Index], e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// resolve walks every token but the last from n and returns the object
// owning the leaf. Nil or absent intermediates fail with ErrNullMember:
// there is no skip mode.
func (d *Document) resolve(n *html.Node, p Path) (Object, error) {
	if len(p) == 0 {
		return nil, &PathError{Path: p, Index: -1, Err: ErrEmptyPath}
	}
	obj := d.Object(n)
	for i, tok := range p[:len(p)-1] {
		v, ok := obj.Get(tok)
		if !ok || v == nil {
			return nil, &PathError{Path: p, Index: i, Err: ErrNullMember}
		}
		next, err := d.asObject(v)
		if err != nil {
			return nil, &PathError{Path: p, Index: i, Err: err}
		}
		obj = next
	}
	return obj, nil
}

func (d *Document) asObject(v any) (Object, error) {
	switch v := v.(type) {
	case Object:
		return v, nil
	case *html.Node:
		if v == nil {
			return nil, ErrNullMember
		}
		return d.Object(v), nil
	case Result:
		if n := v.Node(); n != nil {
			return d.Object(n), nil
		}
		if v.Kind() == None {
			return nil, ErrNullMember
		}
		return nil, ErrNotObject
	default:
		return nil, ErrNotObject
	}
}
