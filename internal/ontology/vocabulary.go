package ontology

import "strings"

// Standard vocabulary IRIs the loader understands
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"

	RDFType         = RDFNamespace + "type"
	RDFSClass       = RDFSNamespace + "Class"
	RDFSSubClassOf  = RDFSNamespace + "subClassOf"
	OWLClass        = OWLNamespace + "Class"
	OWLNamedIndiv   = OWLNamespace + "NamedIndividual"
	OWLThing        = OWLNamespace + "Thing"
	OWLOntology     = OWLNamespace + "Ontology"
	OWLDatatypeProp = OWLNamespace + "DatatypeProperty"
	OWLObjectProp   = OWLNamespace + "ObjectProperty"
)

// LocalName returns the part of an IRI after the last '#', or after the last
// '/' when there is no fragment. "http://test.org/periodic#symbol" -> "symbol".
func LocalName(iri string) string {
	if i := strings.LastIndex(iri, "#"); i >= 0 {
		return iri[i+1:]
	}
	if i := strings.LastIndex(iri, "/"); i >= 0 {
		return iri[i+1:]
	}
	return iri
}

// structural reports whether an rdf:type object describes the vocabulary itself
// rather than a domain class.
func structural(typeIRI string) bool {
	switch typeIRI {
	case OWLClass, RDFSClass, OWLNamedIndiv, OWLThing, OWLOntology, OWLDatatypeProp, OWLObjectProp,
		RDFNamespace + "Property", OWLNamespace + "AnnotationProperty", OWLNamespace + "FunctionalProperty":
		return true
	}
	return false
}
