package revision

import (
	"encoding/json"
	"sort"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/redlinehq/redline/ir"
)

// FormatChange records a property-set change: the full sets on both sides
// plus the names of the properties that differ.
type FormatChange struct {
	Old     ir.Props `json:"old,omitempty"`
	New     ir.Props `json:"new,omitempty"`
	Changed []string `json:"changed,omitempty"`
}

func formatChange(old, new ir.Props) (*FormatChange, error) {
	names, err := changedNames(old, new)
	if err != nil {
		return nil, err
	}
	return &FormatChange{Old: old.Clone(), New: new.Clone(), Changed: names}, nil
}

// changedNames diffs two property sets through a JSON merge patch: a key
// appears in the patch exactly when its value changed, was added or was
// removed.
func changedNames(old, new ir.Props) ([]string, error) {
	if old == nil {
		old = ir.Props{}
	}
	if new == nil {
		new = ir.Props{}
	}
	oldDoc, err := json.Marshal(old)
	if err != nil {
		return nil, err
	}
	newDoc, err := json.Marshal(new)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(oldDoc, newDoc)
	if err != nil {
		return nil, err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(patch, &keys); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names, nil
}
