package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOPOrderResolves(t *testing.T) {
	for _, id := range SOPOrder {
		s, ok := SOPByID(id)
		require.True(t, ok, "section %q missing", id)
		assert.Equal(t, id, s.ID)
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Purpose)
		assert.NotEmpty(t, s.Steps)
	}
}

func TestSOPByIDUnknown(t *testing.T) {
	_, ok := SOPByID("afterparty")
	assert.False(t, ok)
}

func TestResourceOrderResolves(t *testing.T) {
	for _, name := range ResourceOrder {
		r, ok := ResourceByName(name)
		require.True(t, ok, "resource %q missing", name)
		assert.NotEmpty(t, r.Description)
		assert.NotEmpty(t, r.Rules)
		assert.NotEmpty(t, r.Exams)
		assert.NotEmpty(t, r.Support.Email)
	}
}

func TestResourceByNameUnknown(t *testing.T) {
	_, ok := ResourceByName("Kryterion")
	assert.False(t, ok)
}
