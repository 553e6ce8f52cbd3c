package memory

import (
	"testing"
	"time"

	"echomart-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	s := &store.Session{ID: "sess-1"}
	repo.Save(s)

	got, found := repo.Get("sess-1")
	require.True(t, found)
	assert.Same(t, s, got, "repo hands back the live session, not a copy")

	_, found = repo.Get("sess-unknown")
	assert.False(t, found)

	repo.Delete("sess-1")
	_, found = repo.Get("sess-1")
	assert.False(t, found)
}
