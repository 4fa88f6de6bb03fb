package draft

import (
	"errors"
	"testing"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deepClean() models.BookingDraft {
	return models.BookingDraft{
		Category:    "cleaning",
		Slug:        "deep-clean",
		ServiceName: "Full Home Deep Clean",
		BasePrice:   999,
	}
}

func TestPutOverwrites(t *testing.T) {
	m := NewMailbox(storage.NewMemoryStore())

	require.True(t, m.Put(deepClean()))
	other := deepClean()
	other.Slug = "sofa-clean"
	require.True(t, m.Put(other))

	d, ok := m.Peek()
	require.True(t, ok)
	assert.Equal(t, "sofa-clean", d.Slug, "the slot holds at most one draft")
}

func TestPeekDoesNotConsume(t *testing.T) {
	m := NewMailbox(storage.NewMemoryStore())
	m.Put(deepClean())

	_, ok := m.Peek()
	require.True(t, ok)
	_, ok = m.Peek()
	assert.True(t, ok)
}

func TestTakeConsumesExactlyOnce(t *testing.T) {
	m := NewMailbox(storage.NewMemoryStore())
	m.Put(deepClean())

	d, ok := m.Take()
	require.True(t, ok)
	assert.Equal(t, "deep-clean", d.Slug)

	_, ok = m.Take()
	assert.False(t, ok, "a second take must find nothing")
	_, ok = m.Peek()
	assert.False(t, ok)
}

func TestTakeOnEmptySlot(t *testing.T) {
	m := NewMailbox(storage.NewMemoryStore())
	_, ok := m.Take()
	assert.False(t, ok)
}

func TestClearAbandonsDraft(t *testing.T) {
	m := NewMailbox(storage.NewMemoryStore())
	m.Put(deepClean())

	m.Clear()
	_, ok := m.Peek()
	assert.False(t, ok)
}

// stickyStore refuses deletes, simulating a backend where removal fails but
// writes still work.
type stickyStore struct {
	inner storage.Store
}

func (s stickyStore) Get(key string) ([]byte, bool)  { return s.inner.Get(key) }
func (s stickyStore) Set(key string, v []byte) error { return s.inner.Set(key, v) }
func (s stickyStore) Delete(key string) error        { return errors.New("delete unsupported") }

func TestTakeStillConsumesWhenDeleteFails(t *testing.T) {
	m := NewMailbox(stickyStore{inner: storage.NewMemoryStore()})
	m.Put(deepClean())

	_, ok := m.Take()
	require.True(t, ok)

	_, ok = m.Take()
	assert.False(t, ok, "a failed delete must not resurrect the draft")
}
