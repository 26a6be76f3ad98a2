package screens

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hy4k/fets.space/internal/record"
	"github.com/hy4k/fets.space/internal/store"
)

// stubRecords is an empty record.Store for screen-level tests.
type stubRecords struct{}

func (stubRecords) ListAll(ctx context.Context) ([]record.Record, error) { return nil, nil }
func (stubRecords) Insert(ctx context.Context, r record.Record) error    { return nil }
func (stubRecords) Update(ctx context.Context, id string, r record.Record) error {
	return nil
}
func (stubRecords) Delete(ctx context.Context, id string) error { return nil }
func (stubRecords) Count(ctx context.Context) (int, error)      { return 0, nil }

func testContext() *Context {
	return &Context{
		Catalog: store.NewCatalog(stubRecords{}),
		MyList:  make(map[string]bool),
		Liked:   make(map[string]bool),
	}
}

func TestRotationTickInvalidatedOnRevisit(t *testing.T) {
	b := NewBrowse(testContext())

	b.Init()
	stale := b.gen

	// Navigating away and back re-inits the screen while the old tick is
	// still pending.
	b.Init()
	require.NotEqual(t, stale, b.gen)

	assert.Nil(t, b.Update(rotateFeaturedMsg{gen: stale}),
		"a tick from a previous visit must not reschedule")
	assert.NotNil(t, b.Update(rotateFeaturedMsg{gen: b.gen}),
		"the current chain keeps rescheduling")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly", truncate("exactly", 7))
	assert.Equal(t, "abcde...", truncate("abcdefghij", 8))

	got := truncate(strings.Repeat("é", 10), 8)
	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")
	assert.Equal(t, strings.Repeat("é", 5)+"...", got)
}
