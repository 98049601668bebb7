package rdf

import "testing"

func TestTermKind_String(t *testing.T) {
	tests := []struct {
		kind     TermKind
		expected string
	}{
		{TermIRI, "iri"},
		{TermBlankNode, "blank"},
		{TermLiteral, "literal"},
		{TermKind(99), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			if got := test.kind.String(); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestTermString(t *testing.T) {
	tests := []struct {
		name     string
		term     Term
		expected string
	}{
		{"iri", IRI{Value: "http://example.org/s"}, "http://example.org/s"},
		{"blank node", BlankNode{ID: "b0"}, "_:b0"},
		{"plain literal", Literal{Lexical: "hello"}, `"hello"`},
		{"language literal", Literal{Lexical: "hello", Lang: "en"}, `"hello"@en`},
		{
			"typed literal",
			Literal{Lexical: "42", Datatype: IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"}},
			`"42"^^<http://www.w3.org/2001/XMLSchema#integer>`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.term.String(); got != test.expected {
				t.Errorf("expected %s, got %s", test.expected, got)
			}
		})
	}
}

func TestTermKinds(t *testing.T) {
	if (IRI{}).Kind() != TermIRI {
		t.Error("IRI should have kind TermIRI")
	}
	if (BlankNode{}).Kind() != TermBlankNode {
		t.Error("BlankNode should have kind TermBlankNode")
	}
	if (Literal{}).Kind() != TermLiteral {
		t.Error("Literal should have kind TermLiteral")
	}
}

func TestStatement_String(t *testing.T) {
	stmt := Statement{
		Subject:   IRI{Value: "http://example.org/s"},
		Predicate: IRI{Value: "http://example.org/p"},
		Object:    Literal{Lexical: "o"},
	}

	expected := `http://example.org/s http://example.org/p "o"`
	if got := stmt.String(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}

func TestStatement_String_NilTerms(t *testing.T) {
	var stmt Statement
	if got := stmt.String(); got != "<nil> <nil> <nil>" {
		t.Errorf("unexpected string for zero statement: %s", got)
	}
}

func TestStatement_IsZero(t *testing.T) {
	var zero Statement
	if !zero.IsZero() {
		t.Error("zero statement should report IsZero")
	}

	stmt := Statement{Subject: IRI{Value: "http://example.org/s"}}
	if stmt.IsZero() {
		t.Error("statement with a subject should not report IsZero")
	}
}

func TestNamespace_String(t *testing.T) {
	ns := Namespace{Prefix: "ex", URI: "http://example.org/"}
	if got := ns.String(); got != "ex: http://example.org/" {
		t.Errorf("unexpected namespace string: %s", got)
	}
}
