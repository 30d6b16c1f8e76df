package ir

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	doc := sampleDoc()
	doc.Part(PartBody).Kids[0].WithID("p1")

	d, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	back := &Node{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if back.Digest() != doc.Digest() {
		t.Fatalf("round trip changed tree:\n%s", d)
	}
	if back.Part(PartBody).Kids[0].StableID != "p1" {
		t.Fatal("round trip dropped stable id")
	}
	// Parent links are rebuilt on unmarshal.
	para := back.Part(PartBody).Kids[0]
	if para.Parent != back.Part(PartBody) || para.ParentIndex != 0 {
		t.Fatal("parent links not rebuilt")
	}
}

func TestJSONKindNames(t *testing.T) {
	d, err := json.Marshal(Para(Text("x")))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(d), `"kind":"paragraph"`) {
		t.Fatalf("kind not serialized by name: %s", d)
	}
}

func TestJSONMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"run with kids", `{"kind":"run","kids":[{"kind":"run"}]}`},
		{"object with kids", `{"kind":"object","name":"img","kids":[{"kind":"run"}]}`},
		{"object without key", `{"kind":"object"}`},
		{"part without name", `{"kind":"part"}`},
		{"text on container", `{"kind":"paragraph","text":"x"}`},
		{"mark revision on run", `{"kind":"run","markRev":{"kind":"del","id":1}}`},
		{"unknown kind", `{"kind":"chapter"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &Node{}
			err := json.Unmarshal([]byte(tt.in), n)
			if err == nil {
				t.Fatal("no error")
			}
			if tt.name != "unknown kind" && !errors.Is(err, ErrMalformed) {
				t.Fatalf("error %v is not ErrMalformed", err)
			}
		})
	}
}
