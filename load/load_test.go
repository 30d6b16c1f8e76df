package load

import (
	"errors"
	"strings"
	"testing"

	"github.com/redlinehq/redline/encode"
)

func TestLoad(t *testing.T) {
	src := `
parts:
  - name: body
    blocks:
      - para:
          id: p1
          runs:
            - text: "Hello "
            - text: world
              props: {b: "1"}
      - table:
          rows:
            - cells:
                - blocks:
                    - para:
                        runs: [{text: cell}]
  - name: footnotes
    blocks:
      - footnote:
          blocks:
            - para:
                runs: [{text: note, props: {i: "1"}}, {object: img-1}]
`
	doc, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := strings.Join([]string{
		"document",
		"  part body",
		`    paragraph "Hello " "world" ¶`,
		"    table",
		"      row",
		"        cell",
		`          paragraph "cell" ¶`,
		"  part footnotes",
		"    footnote",
		`      paragraph "note" (img-1) ¶`,
	}, "\n")
	if got := encode.MustString(doc); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	if id := doc.Kids[0].Kids[0].StableID; id != "p1" {
		t.Errorf("paragraph id = %q, want p1", id)
	}
	if b := doc.Kids[0].Kids[0].Kids[1].Props["b"]; b != "1" {
		t.Errorf("run props not preserved, got %v", doc.Kids[0].Kids[0].Kids[1].Props)
	}
}

func TestLoadJSON(t *testing.T) {
	src := `{"parts": [{"name": "body", "blocks": [{"para": {"runs": [{"text": "x"}]}}]}]}`
	doc, err := Bytes([]byte(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := encode.MustString(doc); got != "document\n  part body\n    paragraph \"x\" ¶" {
		t.Errorf("got:\n%s", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "not yaml", src: "parts: ["},
		{name: "no parts", src: `{}`},
		{name: "unnamed part", src: `parts: [{blocks: []}]`},
		{name: "duplicate part", src: "parts:\n  - name: body\n  - name: body\n"},
		{
			name: "two block kinds",
			src: `
parts:
  - name: body
    blocks:
      - para: {runs: []}
        table: {rows: [{cells: [{}]}]}
`,
		},
		{
			name: "empty block",
			src: `
parts:
  - name: body
    blocks:
      - {}
`,
		},
		{
			name: "text and object in one run",
			src: `
parts:
  - name: body
    blocks:
      - para:
          runs: [{text: x, object: img}]
`,
		},
		{
			name: "table without rows",
			src: `
parts:
  - name: body
    blocks:
      - table: {rows: []}
`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Bytes([]byte(tc.src)); !errors.Is(err, ErrLoad) {
				t.Fatalf("got %v, want ErrLoad", err)
			}
		})
	}
}
