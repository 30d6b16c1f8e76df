// Package encode renders document trees as indented review text.
//
// # Usage
//
//	// Plain rendering
//	var buf bytes.Buffer
//	err := encode.Encode(result.Tree, &buf)
//
//	// Colored rendering for a terminal
//	err := encode.Encode(result.Tree, os.Stdout,
//	    encode.EncodeColors(encode.NewColors()))
//
// Each block element takes one line, indented by nesting depth. Run text
// appears inline in its paragraph line, quoted; revision markup renders
// as kind[id] markers around the content it annotates and paragraph
// marks as a trailing pilcrow.
//
// # Related Packages
//
//   - github.com/redlinehq/redline/ir - document tree representation
//   - github.com/redlinehq/redline/load - parse interchange documents
package encode
