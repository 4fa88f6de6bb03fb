package payments

import (
	"strings"
	"testing"

	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFillsDefaults(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	p, ok := r.Add(models.Payment{BookingID: "bk-1", ServiceName: "AC Service", Amount: 399})
	require.True(t, ok)

	assert.True(t, strings.HasPrefix(p.ID, "pay-"))
	assert.Equal(t, models.PaymentPending, p.Status)
	assert.Equal(t, "—", p.Location)
	assert.NotEmpty(t, p.Date)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestAddKeepsProvidedFields(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	p, _ := r.Add(models.Payment{
		BookingID: "bk-1",
		Location:  "Indiranagar, Bengaluru",
		Status:    models.PaymentPaid,
	})
	assert.Equal(t, models.PaymentPaid, p.Status)
	assert.Equal(t, "Indiranagar, Bengaluru", p.Location)
}

func TestListNewestFirst(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	first, _ := r.Add(models.Payment{BookingID: "bk-1"})
	second, _ := r.Add(models.Payment{BookingID: "bk-2"})

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListByBooking(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	r.Add(models.Payment{BookingID: "bk-1"})
	r.Add(models.Payment{BookingID: "bk-2"})
	r.Add(models.Payment{BookingID: "bk-1"})

	assert.Len(t, r.ListByBooking("bk-1"), 2)
	assert.Len(t, r.ListByBooking("bk-2"), 1)
	assert.Empty(t, r.ListByBooking("bk-3"))
}

func TestUpdateStatusByBooking(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	r.Add(models.Payment{BookingID: "bk-1"})
	r.Add(models.Payment{BookingID: "bk-1"})
	r.Add(models.Payment{BookingID: "bk-2"})

	changed := r.UpdateStatusByBooking("bk-1", models.PaymentPaid)
	assert.Equal(t, 2, changed)

	for _, p := range r.ListByBooking("bk-1") {
		assert.Equal(t, models.PaymentPaid, p.Status)
	}
	assert.Equal(t, models.PaymentPending, r.ListByBooking("bk-2")[0].Status)

	assert.Zero(t, r.UpdateStatusByBooking("bk-1", models.PaymentPaid),
		"a repeated update changes nothing")
}
