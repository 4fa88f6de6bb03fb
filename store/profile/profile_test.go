package profile

import (
	"testing"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHireProfileStartsEmpty(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	assert.Nil(t, r.Hire())
	assert.Nil(t, r.Provider())
}

func TestSaveHireShallowMerges(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	require.True(t, r.SaveHire(models.Profile{"name": "Priya", "city": "Bengaluru"}))
	require.True(t, r.SaveHire(models.Profile{"city": "Mysuru"}))

	got := r.Hire()
	require.NotNil(t, got)
	assert.Equal(t, "Priya", got["name"], "absent keys survive a merge")
	assert.Equal(t, "Mysuru", got["city"], "incoming keys overwrite")
}

func TestHireAndProviderAreSeparate(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	r.SaveHire(models.Profile{"role": "hire"})
	r.SaveProvider(models.Profile{"role": "provider"})

	assert.Equal(t, "hire", r.Hire()["role"])
	assert.Equal(t, "provider", r.Provider()["role"])
}

func TestLocationRoundTrip(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	assert.Empty(t, r.Location())
	require.True(t, r.SaveLocation("HSR Layout, Bengaluru"))
	assert.Equal(t, "HSR Layout, Bengaluru", r.Location())
}

func TestEmptyLocationNotPersisted(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	r.SaveLocation("HSR Layout, Bengaluru")

	assert.True(t, r.SaveLocation(""))
	assert.Equal(t, "HSR Layout, Bengaluru", r.Location(), "clearing via empty string is ignored")
}
