package tickets

import (
	"strings"
	"testing"
	"time"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFillsDefaults(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	tk, ok := r.Create(models.Ticket{Subject: "Refund not received"})
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(tk.ID, "T-"))
	assert.Equal(t, "Unknown", tk.User)
	assert.Equal(t, models.PriorityMedium, tk.Priority)
	assert.Equal(t, models.TicketOpen, tk.Status)
	assert.False(t, tk.CreatedAt.IsZero())
	assert.Equal(t, tk.CreatedAt, tk.UpdatedAt)
}

func TestCreateKeepsProvidedFields(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	tk, _ := r.Create(models.Ticket{
		Subject:  "App crashes on checkout",
		User:     "priya@example.com",
		Priority: models.PriorityHigh,
	})
	assert.Equal(t, "priya@example.com", tk.User)
	assert.Equal(t, models.PriorityHigh, tk.Priority)
}

func TestUpdateStatusIsUnrestricted(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	tk, _ := r.Create(models.Ticket{Subject: "Refund not received"})

	got, ok := r.UpdateStatus(tk.ID, models.TicketResolved)
	require.True(t, ok)
	assert.Equal(t, models.TicketResolved, got.Status)

	// A resolved ticket can be reopened.
	got, ok = r.UpdateStatus(tk.ID, models.TicketOpen)
	require.True(t, ok)
	assert.Equal(t, models.TicketOpen, got.Status)
}

func TestUpdateStatusStampsUpdatedAt(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	tk, _ := r.Create(models.Ticket{Subject: "Refund not received"})

	time.Sleep(5 * time.Millisecond)
	got, ok := r.UpdateStatus(tk.ID, models.TicketInProgress)
	require.True(t, ok)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdateStatusMissingTicket(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	_, ok := r.UpdateStatus("T-missing", models.TicketResolved)
	assert.False(t, ok)
}

func TestListByStatus(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	a, _ := r.Create(models.Ticket{Subject: "a"})
	r.Create(models.Ticket{Subject: "b"})
	r.UpdateStatus(a.ID, models.TicketResolved)

	assert.Len(t, r.ListByStatus(models.TicketOpen), 1)
	assert.Len(t, r.ListByStatus(models.TicketResolved), 1)
	assert.Empty(t, r.ListByStatus(models.TicketInProgress))
}
