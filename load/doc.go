// Package load parses interchange documents into ir trees.
//
// The interchange format is YAML (JSON parses too): a document is a list
// of named parts holding block elements, where a block is exactly one of
// para, table, textbox, footnote or endnote. Stable ids and properties
// are optional everywhere.
//
//	parts:
//	  - name: body
//	    blocks:
//	      - para:
//	          id: p1
//	          props: {style: Normal}
//	          runs:
//	            - text: "Hello "
//	            - {text: world, props: {b: "1"}}
//	            - {object: image-1}
//	      - table:
//	          rows:
//	            - cells:
//	                - blocks:
//	                    - para: {runs: [{text: cell text}]}
//
// Adapters for native document formats are expected to build ir trees
// directly; this package exists for tests, fixtures and the CLI.
package load
