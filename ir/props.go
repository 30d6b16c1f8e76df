package ir

import (
	"maps"
	"slices"
	"strings"
)

// Props is a string-keyed property set: run formatting (bold, italic,
// size, ...) or container properties (row height, cell span, paragraph
// style). Keys and values are opaque to the engine; only equality and the
// canonical signature matter.
type Props map[string]string

func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

func (p Props) Equal(o Props) bool {
	return maps.Equal(p, o)
}

// Signature returns a canonical "k=v;k2=v2" rendering with sorted keys,
// used as the formatting component of digests and atom signatures.
func (p Props) Signature() string {
	if len(p) == 0 {
		return ""
	}
	keys := slices.Sorted(maps.Keys(p))
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(p[k])
	}
	return sb.String()
}

// Keys returns the sorted key set.
func (p Props) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}
