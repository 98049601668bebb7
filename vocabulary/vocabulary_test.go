package vocabulary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360/semserial/rdf"
)

func TestTerm(t *testing.T) {
	iri := Term(RDFNamespaceURI, "Bag")
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#Bag", iri.Value)
	assert.Equal(t, rdf.TermIRI, iri.Kind())
}

func TestWellKnownTerms(t *testing.T) {
	assert.Equal(t, "http://www.w3.org/1999/02/22-rdf-syntax-ns#type", RDFType.Value)
	assert.Equal(t, "http://www.w3.org/2000/01/rdf-schema#label", RDFSLabel.Value)
	assert.Equal(t, "http://www.w3.org/2002/07/owl#sameAs", OWLSameAs.Value)
	assert.Equal(t, "http://purl.org/dc/terms/title", DCTitle.Value)
	assert.Equal(t, "http://www.w3.org/2001/XMLSchema#integer", XSDInteger.Value)
}

func TestNamespaces(t *testing.T) {
	declarable := []rdf.Namespace{RDF, RDFS, XSD, OWL, DCTerms, FOAF}
	for _, ns := range declarable {
		assert.NotEmpty(t, ns.Prefix)
		// Namespace URIs end at a fragment or path boundary so local
		// names concatenate cleanly.
		ok := strings.HasSuffix(ns.URI, "#") || strings.HasSuffix(ns.URI, "/")
		assert.True(t, ok, "namespace %q must end with # or /", ns.Prefix)
	}
}

func TestCommon(t *testing.T) {
	common := Common()
	assert.Equal(t, []rdf.Namespace{RDF, RDFS, XSD}, common)
}

func TestTypedLiteral(t *testing.T) {
	lit := rdf.Literal{Lexical: "42", Datatype: XSDInteger}
	assert.Equal(t, `"42"^^<http://www.w3.org/2001/XMLSchema#integer>`, lit.String())
}
