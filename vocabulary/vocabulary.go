// Package vocabulary provides well-known RDF namespace and term constants
// for SemSerial backends and callers.
//
// Backends declare namespaces through sessions; the constants here cover
// the vocabularies most serializations touch so callers do not retype W3C
// URIs. Term builds IRIs for anything beyond the predeclared set.
package vocabulary

import "github.com/c360/semserial/rdf"

// Core W3C namespace URIs.
const (
	// RDFNamespaceURI is the RDF syntax namespace.
	RDFNamespaceURI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSchemaNamespaceURI is the RDF Schema namespace.
	RDFSchemaNamespaceURI = "http://www.w3.org/2000/01/rdf-schema#"

	// XSDNamespaceURI is the XML Schema datatypes namespace.
	XSDNamespaceURI = "http://www.w3.org/2001/XMLSchema#"

	// OWLNamespaceURI is the Web Ontology Language namespace.
	OWLNamespaceURI = "http://www.w3.org/2002/07/owl#"

	// XMLNamespaceURI is the built-in XML namespace.
	XMLNamespaceURI = "http://www.w3.org/XML/1998/namespace"
)

// Common publication vocabulary URIs.
const (
	// DCTermsNamespaceURI is the Dublin Core terms namespace.
	DCTermsNamespaceURI = "http://purl.org/dc/terms/"

	// FOAFNamespaceURI is the Friend of a Friend namespace.
	FOAFNamespaceURI = "http://xmlns.com/foaf/0.1/"
)

// Declarable namespaces with their conventional prefixes.
var (
	RDF     = rdf.Namespace{Prefix: "rdf", URI: RDFNamespaceURI}
	RDFS    = rdf.Namespace{Prefix: "rdfs", URI: RDFSchemaNamespaceURI}
	XSD     = rdf.Namespace{Prefix: "xsd", URI: XSDNamespaceURI}
	OWL     = rdf.Namespace{Prefix: "owl", URI: OWLNamespaceURI}
	DCTerms = rdf.Namespace{Prefix: "dcterms", URI: DCTermsNamespaceURI}
	FOAF    = rdf.Namespace{Prefix: "foaf", URI: FOAFNamespaceURI}
)

// Frequently serialized terms.
var (
	RDFType     = Term(RDFNamespaceURI, "type")
	RDFSLabel   = Term(RDFSchemaNamespaceURI, "label")
	RDFSComment = Term(RDFSchemaNamespaceURI, "comment")
	OWLSameAs   = Term(OWLNamespaceURI, "sameAs")
	DCTitle     = Term(DCTermsNamespaceURI, "title")
	FOAFName    = Term(FOAFNamespaceURI, "name")
)

// XSD datatype terms for typed literals.
var (
	XSDString   = Term(XSDNamespaceURI, "string")
	XSDInteger  = Term(XSDNamespaceURI, "integer")
	XSDDouble   = Term(XSDNamespaceURI, "double")
	XSDBoolean  = Term(XSDNamespaceURI, "boolean")
	XSDDateTime = Term(XSDNamespaceURI, "dateTime")
)

// Term builds an IRI from a namespace URI and a local name.
func Term(namespaceURI, local string) rdf.IRI {
	return rdf.IRI{Value: namespaceURI + local}
}

// Common returns the namespaces most serializations declare, in
// conventional order.
func Common() []rdf.Namespace {
	return []rdf.Namespace{RDF, RDFS, XSD}
}
