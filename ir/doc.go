// Package ir provides the intermediate representation (IR) for documents
// under comparison.
//
// # Overview
//
// The IR package defines the tree of nodes that both comparison inputs and
// the reconstructed, revision-marked output share. A document is a tree:
// a document node holding named parts, parts holding block elements
// (paragraphs, tables, text boxes, notes), and block elements bottoming
// out in runs of text and opaque objects.
//
// The IR is a simple recursive structure readily representable in JSON and
// YAML, so documents can be produced and inspected in contexts that lack
// any knowledge of the comparison engine.
//
// # Node Structure
//
// A Node represents one element. The Kind field says which one:
//
//   - Containers: document, part, paragraph, table, row, cell, textbox,
//     footnote, endnote
//   - Inline content: run (formatted text), object (image, break, field)
//   - Revision markup, in output trees only: ins, del, moveFrom, moveTo,
//     moveRangeStart, moveRangeEnd
//
// Each node maintains parent-child relationships, allowing navigation
// through the tree. The IR works as a tagged union: which fields are
// meaningful depends on the Kind (Text for runs, Name for parts and
// objects, Kids for containers).
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	doc := ir.Doc(ir.Body(
//	    ir.Para(ir.Text("Hello, "), ir.Run(ir.Props{"b": "1"}, "world")),
//	))
//
// # Stable IDs
//
// Containers carry a StableID that identifies them across the two sides of
// a comparison. The comparison engine assigns these; input producers leave
// them empty.
//
// # Revision Markup
//
// Output trees annotate changes in two ways. Runs get wrapped in markup
// nodes (KindIns, KindDel, KindMoveFrom, KindMoveTo) carrying a Rev.
// Containers that exist on only one side carry the Rev directly. A
// paragraph's mark revision lives in MarkRev.
//
// # Digests
//
// Digest returns a BLAKE3 digest of a subtree's content and structure,
// memoized per node:
//
//	same := a.Digest() == b.Digest()
//
// Mutate nodes through Append, SetText and SetProps so memoized digests
// stay valid.
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone nodes
// for each goroutine.
//
// # Related Packages
//
//   - github.com/redlinehq/redline/unit - Splits trees into comparison units
//   - github.com/redlinehq/redline/encode - Renders trees and revision markup
//   - github.com/redlinehq/redline/load - Reads documents from YAML/JSON
package ir
