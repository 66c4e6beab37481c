package dom

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("parentNode.classList.add")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Path{"parentNode", "classList", "add"}, p); diff != "" {
		t.Errorf("tokens (-want +got):\n%s", diff)
	}
	if p.String() != "parentNode.classList.add" {
		t.Errorf("String: got %q", p.String())
	}

	for _, bad := range []string{"", ".", "a..b", "a."} {
		if _, err := ParsePath(bad); !errors.Is(err, ErrEmptyPath) {
			t.Errorf("ParsePath(%q): got %v, want ErrEmptyPath", bad, err)
		}
	}
}

func TestMustPathPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPath must panic on a bad path")
		}
	}()
	MustPath("a..b")
}

func TestPathErrorMessage(t *testing.T) {
	err := &PathError{Path: Path{"parentNode", "id"}, Index: 0, Err: ErrNullMember}
	msg := err.Error()
	if !strings.Contains(msg, `"parentNode.id"`) || !strings.Contains(msg, `at "parentNode"`) {
		t.Errorf("message: %s", msg)
	}
}

func TestZeroPathFailsOnNonEmptyList(t *testing.T) {
	d := fixture(t)
	if _, err := divsOf(t, d).EachPath(nil); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got %v, want ErrEmptyPath", err)
	}
}
