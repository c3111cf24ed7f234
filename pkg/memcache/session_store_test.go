package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSessionCache_PutGet(t *testing.T) {
	c := NewSessionCache()

	require.NoError(t, c.Put("s1", "plan", payload{Name: "Lisbon", Count: 3}, 0))

	var got payload
	require.True(t, c.Get("s1", "plan", &got))
	assert.Equal(t, payload{Name: "Lisbon", Count: 3}, got)
}

func TestSessionCache_AbsentIsNotAnError(t *testing.T) {
	c := NewSessionCache()

	var got payload
	assert.False(t, c.Get("s1", "plan", &got))
}

func TestSessionCache_FieldsAreIsolated(t *testing.T) {
	c := NewSessionCache()

	require.NoError(t, c.Put("s1", "plan", payload{Name: "A"}, 0))
	require.NoError(t, c.Put("s1", "options", payload{Name: "B"}, 0))
	require.NoError(t, c.Put("s2", "plan", payload{Name: "C"}, 0))

	var got payload
	require.True(t, c.Get("s1", "plan", &got))
	assert.Equal(t, "A", got.Name)
	require.True(t, c.Get("s2", "plan", &got))
	assert.Equal(t, "C", got.Name)
}

func TestSessionCache_Delete(t *testing.T) {
	c := NewSessionCache()

	require.NoError(t, c.Put("s1", "plan", payload{Name: "A"}, 0))
	c.Delete("s1", "plan")

	var got payload
	assert.False(t, c.Get("s1", "plan", &got))
}

func TestSessionCache_ExpiredReadsAsAbsent(t *testing.T) {
	c := NewSessionCache()

	require.NoError(t, c.Put("s1", "plan", payload{Name: "A"}, time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	var got payload
	assert.False(t, c.Get("s1", "plan", &got))
}

func TestSessionCache_CorruptedEntryReadsAsAbsent(t *testing.T) {
	c := NewSessionCache()
	c.data[key("s1", "plan")] = entry{
		payload:   []byte("{broken"),
		expiresAt: time.Now().Add(time.Hour),
	}

	var got payload
	assert.False(t, c.Get("s1", "plan", &got))

	// The corrupted entry was dropped; the slot is reusable.
	require.NoError(t, c.Put("s1", "plan", payload{Name: "fresh"}, 0))
	require.True(t, c.Get("s1", "plan", &got))
	assert.Equal(t, "fresh", got.Name)
}
