package null

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semserial/errors"
	"github.com/c360/semserial/rdf"
	"github.com/c360/semserial/serializer"
)

func TestRegister(t *testing.T) {
	registry := serializer.NewRegistry()
	require.NoError(t, Register(registry))

	assert.True(t, registry.IsRegistered("null"))

	info, err := registry.Enumerate(0)
	require.NoError(t, err)
	assert.Equal(t, "null", info.Name)
	assert.Equal(t, "Discard serialized output", info.Label)
}

func TestSerializer_DiscardsOutput(t *testing.T) {
	registry := serializer.NewRegistry()
	require.NoError(t, Register(registry))

	session, err := serializer.NewSession(registry, "null")
	require.NoError(t, err)
	defer session.Close()

	buf, err := session.StartToBuffer("http://example.org/base")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, session.SerializeStatement(rdf.Statement{
			Subject:   rdf.IRI{Value: "http://example.org/s"},
			Predicate: rdf.IRI{Value: "http://example.org/p"},
			Object:    rdf.Literal{Lexical: "o"},
		}))
	}
	require.NoError(t, session.End())

	// Statements are counted, never written
	assert.Zero(t, buf.Len())
}

func TestSerializer_CountsStatements(t *testing.T) {
	z := &Serializer{}

	for i := 0; i < 5; i++ {
		require.NoError(t, z.SerializeStatement(nil, rdf.Statement{
			Subject:   rdf.IRI{Value: "http://example.org/s"},
			Predicate: rdf.IRI{Value: "http://example.org/p"},
			Object:    rdf.IRI{Value: "http://example.org/o"},
		}))
	}

	assert.Equal(t, 5, z.Statements())
}

func TestSerializer_NamespacesUnsupported(t *testing.T) {
	registry := serializer.NewRegistry()
	require.NoError(t, Register(registry))

	session, err := serializer.NewSession(registry, "null")
	require.NoError(t, err)
	defer session.Close()

	_, err = session.StartToBuffer("http://example.org/base")
	require.NoError(t, err)

	err = session.DeclareNamespace("http://example.org/ns#", "ex")
	assert.True(t, stderrors.Is(err, errors.ErrUnsupported))
}
