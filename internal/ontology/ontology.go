// Package ontology loads an RDF/OWL ontology into memory and answers the
// handful of questions the tutor asks of it: does a class exist, which
// individuals belong to it, and what values does an individual carry for a
// property.
//
// Individuals keep the order in which their first rdf:type assertion appears in
// the source, so every query over the same file returns the same sequence.
package ontology

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"

	"periodic-tutor/internal/errors"
)

// Format names an RDF serialization
type Format int

const (
	RDFXML Format = iota
	Turtle
	NTriples
)

func (f Format) String() string {
	switch f {
	case RDFXML:
		return "rdf/xml"
	case Turtle:
		return "turtle"
	case NTriples:
		return "n-triples"
	default:
		return "unknown"
	}
}

func (f Format) rdf() rdf.Format {
	switch f {
	case Turtle:
		return rdf.Turtle
	case NTriples:
		return rdf.NTriples
	default:
		return rdf.RDFXML
	}
}

// FormatForPath picks the serialization from a file extension
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".owl", ".rdf", ".xml":
		return RDFXML, nil
	case ".ttl":
		return Turtle, nil
	case ".nt":
		return NTriples, nil
	default:
		return 0, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Individual is a subject typed with at least one domain class
type Individual struct {
	IRI    string
	Types  []string
	values map[string][]string // keyed by predicate local name; IRIs and literal lexical forms
}

// First returns the first value of the property with the given local name
func (i Individual) First(localName string) (string, bool) {
	vals := i.values[localName]
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// Class is a named class of the ontology
type Class struct {
	IRI  string
	Name string
}

// Stats summarise a loaded ontology
type Stats struct {
	Triples     int
	Classes     int
	Individuals int
}

// Ontology is an immutable in-memory view over the decoded triples
type Ontology struct {
	classes     map[string]bool
	superOf     map[string][]string // class -> direct subclasses
	order       []string            // individuals by first rdf:type
	individuals map[string]*Individual
	values      map[string]map[string][]string
	triples     int
}

func newOntology() *Ontology {
	return &Ontology{
		classes:     make(map[string]bool),
		superOf:     make(map[string][]string),
		individuals: make(map[string]*Individual),
		values:      make(map[string]map[string][]string),
	}
}

// LoadFile reads and decodes an ontology file; the syntax follows the extension
func LoadFile(path string) (*Ontology, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, errors.WrapFatal(err, "ontology", "LoadFile", "detect format")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapFatal(fmt.Errorf("%w: %v", errors.ErrOntologyUnreadable, err),
			"ontology", "LoadFile", "open")
	}
	defer f.Close()

	ont, err := Load(f, format)
	if err != nil {
		return nil, errors.WrapFatal(fmt.Errorf("%w: %s", err, path), "ontology", "LoadFile", "decode")
	}
	return ont, nil
}

// Load decodes every triple from r
func Load(r io.Reader, format Format) (*Ontology, error) {
	dec := rdf.NewTripleDecoder(r, format.rdf())
	ont := newOntology()

	for {
		triple, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s after %d triples: %v", errors.ErrParsingFailed, format, ont.triples, err)
		}
		ont.add(triple)
	}

	return ont, nil
}

func (o *Ontology) add(t rdf.Triple) {
	o.triples++

	subj := t.Subj.String()
	pred := t.Pred.String()
	objIsIRI := t.Obj.Type() == rdf.TermIRI
	obj := t.Obj.String()

	switch {
	case pred == RDFType && objIsIRI:
		if obj == OWLClass || obj == RDFSClass {
			o.classes[subj] = true
			return
		}
		if structural(obj) {
			return
		}
		o.classes[obj] = true
		ind, ok := o.individuals[subj]
		if !ok {
			ind = &Individual{IRI: subj}
			o.individuals[subj] = ind
			o.order = append(o.order, subj)
		}
		ind.Types = append(ind.Types, obj)
		return
	case pred == RDFSSubClassOf && objIsIRI:
		o.classes[subj] = true
		o.classes[obj] = true
		o.superOf[obj] = append(o.superOf[obj], subj)
		return
	}

	props, ok := o.values[subj]
	if !ok {
		props = make(map[string][]string)
		o.values[subj] = props
	}
	name := LocalName(pred)
	props[name] = append(props[name], obj)
}

// Class looks up a class by IRI
func (o *Ontology) Class(iri string) (Class, bool) {
	if !o.classes[iri] {
		return Class{}, false
	}
	return Class{IRI: iri, Name: LocalName(iri)}, true
}

// Instances returns the individuals of the class and of all its subclasses,
// in load order
func (o *Ontology) Instances(classIRI string) []Individual {
	members := o.closure(classIRI)

	out := make([]Individual, 0)
	for _, iri := range o.order {
		ind := o.individuals[iri]
		for _, typ := range ind.Types {
			if members[typ] {
				out = append(out, Individual{IRI: ind.IRI, Types: ind.Types, values: o.values[iri]})
				break
			}
		}
	}
	return out
}

// closure collects classIRI and its transitive subclasses
func (o *Ontology) closure(classIRI string) map[string]bool {
	seen := map[string]bool{classIRI: true}
	queue := []string{classIRI}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, sub := range o.superOf[next] {
			if !seen[sub] {
				seen[sub] = true
				queue = append(queue, sub)
			}
		}
	}
	return seen
}

// Stats reports the size of the ontology
func (o *Ontology) Stats() Stats {
	return Stats{
		Triples:     o.triples,
		Classes:     len(o.classes),
		Individuals: len(o.order),
	}
}
