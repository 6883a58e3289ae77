// Package assets embeds the default element ontology so the tutor runs
// without any file on disk.
package assets

import (
	"bytes"
	_ "embed"
	"io"
)

// DefaultOntologyName is shown wherever the embedded ontology is the source
const DefaultOntologyName = "periodic_table_ontology.owl (embedded)"

//go:embed periodic_table_ontology.owl
var defaultOntology []byte

// DefaultOntology returns a reader over the embedded RDF/XML ontology
func DefaultOntology() io.Reader {
	return bytes.NewReader(defaultOntology)
}
