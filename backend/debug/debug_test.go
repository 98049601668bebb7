package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semserial/option"
	"github.com/c360/semserial/rdf"
	"github.com/c360/semserial/serializer"
)

func newDebugSession(t *testing.T) *serializer.Session {
	t.Helper()

	registry := serializer.NewRegistry()
	require.NoError(t, Register(registry))

	session, err := serializer.NewSession(registry, "debug")
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestRegister(t *testing.T) {
	registry := serializer.NewRegistry()
	require.NoError(t, Register(registry))

	info, err := registry.Enumerate(0)
	require.NoError(t, err)
	assert.Equal(t, "debug", info.Name)
	assert.Equal(t, "text/plain", info.MimeType)
}

func TestSerializer_FullCycle(t *testing.T) {
	session := newDebugSession(t)

	buf, err := session.StartToBuffer("http://example.org/base")
	require.NoError(t, err)

	require.NoError(t, session.DeclareNamespace("http://example.org/ns#", "ex"))
	require.NoError(t, session.SerializeStatement(rdf.Statement{
		Subject:   rdf.IRI{Value: "http://example.org/s"},
		Predicate: rdf.IRI{Value: "http://example.org/p"},
		Object:    rdf.Literal{Lexical: "o"},
	}))
	require.NoError(t, session.End())

	expected := "base <http://example.org/base>\n" +
		"prefix ex: <http://example.org/ns#>\n" +
		"<http://example.org/s> <http://example.org/p> \"o\" .\n" +
		"# 1 statements\n"
	assert.Equal(t, expected, buf.String())
}

func TestSerializer_WriteBaseURIOff(t *testing.T) {
	session := newDebugSession(t)
	require.NoError(t, session.SetOption(option.WriteBaseURI, 0))

	buf, err := session.StartToBuffer("http://example.org/base")
	require.NoError(t, err)
	require.NoError(t, session.End())

	assert.Equal(t, "# 0 statements\n", buf.String())
}

func TestSerializer_TermFormatting(t *testing.T) {
	session := newDebugSession(t)
	require.NoError(t, session.SetOption(option.WriteBaseURI, 0))

	buf, err := session.StartToBuffer("")
	require.NoError(t, err)

	require.NoError(t, session.SerializeStatement(rdf.Statement{
		Subject:   rdf.BlankNode{ID: "b0"},
		Predicate: rdf.IRI{Value: "http://example.org/p"},
		Object: rdf.Literal{
			Lexical: "chat",
			Lang:    "fr",
		},
	}))
	require.NoError(t, session.SerializeStatement(rdf.Statement{
		Subject:   rdf.IRI{Value: "http://example.org/s"},
		Predicate: rdf.IRI{Value: "http://example.org/p"},
		Object: rdf.Literal{
			Lexical:  "42",
			Datatype: rdf.IRI{Value: "http://www.w3.org/2001/XMLSchema#integer"},
		},
	}))
	require.NoError(t, session.End())

	expected := "_:b0 <http://example.org/p> \"chat\"@fr .\n" +
		"<http://example.org/s> <http://example.org/p> \"42\"^^<http://www.w3.org/2001/XMLSchema#integer> .\n" +
		"# 2 statements\n"
	assert.Equal(t, expected, buf.String())
}

func TestSerializer_BulkNamespace(t *testing.T) {
	session := newDebugSession(t)
	require.NoError(t, session.SetOption(option.WriteBaseURI, 0))

	buf, err := session.StartToBuffer("")
	require.NoError(t, err)

	require.NoError(t, session.DeclareNamespaceFrom(rdf.Namespace{
		Prefix: "ex",
		URI:    "http://example.org/ns#",
	}))
	require.NoError(t, session.End())

	assert.Contains(t, buf.String(), "prefix ex: <http://example.org/ns#>\n")
}

func TestSerializer_PositionTracking(t *testing.T) {
	session := newDebugSession(t)

	_, err := session.StartToBuffer("http://example.org/base")
	require.NoError(t, err)

	// The base header is line 1, so the next event lands on line 2
	loc := session.Locator()
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)

	require.NoError(t, session.SerializeStatement(rdf.Statement{
		Subject:   rdf.IRI{Value: "http://example.org/s"},
		Predicate: rdf.IRI{Value: "http://example.org/p"},
		Object:    rdf.IRI{Value: "http://example.org/o"},
	}))

	loc = session.Locator()
	assert.Equal(t, 3, loc.Line)

	require.NoError(t, session.End())
}

func TestSerializer_CountResetsPerCycle(t *testing.T) {
	session := newDebugSession(t)
	require.NoError(t, session.SetOption(option.WriteBaseURI, 0))

	st := rdf.Statement{
		Subject:   rdf.IRI{Value: "http://example.org/s"},
		Predicate: rdf.IRI{Value: "http://example.org/p"},
		Object:    rdf.IRI{Value: "http://example.org/o"},
	}

	first, err := session.StartToBuffer("")
	require.NoError(t, err)
	require.NoError(t, session.SerializeStatement(st))
	require.NoError(t, session.SerializeStatement(st))
	require.NoError(t, session.End())
	assert.Contains(t, first.String(), "# 2 statements\n")

	second, err := session.StartToBuffer("")
	require.NoError(t, err)
	require.NoError(t, session.SerializeStatement(st))
	require.NoError(t, session.End())
	assert.Contains(t, second.String(), "# 1 statements\n")
}
