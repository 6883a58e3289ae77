package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"periodic-tutor/internal/ontology"
)

func TestDefaultOntologyHasEveryElement(t *testing.T) {
	ont, err := ontology.Load(DefaultOntology(), ontology.RDFXML)
	require.NoError(t, err)

	_, ok := ont.Class("http://test.org/periodic#Element")
	require.True(t, ok)

	instances := ont.Instances("http://test.org/periodic#Element")
	require.Len(t, instances, 118)

	symbol, _ := instances[0].First("symbol")
	assert.Equal(t, "H", symbol)
	last, _ := instances[117].First("name")
	assert.Equal(t, "Oganesson", last)

	_, hasGroup := instances[57].First("group")
	assert.False(t, hasGroup, "cerium sits outside the numbered groups")
}
