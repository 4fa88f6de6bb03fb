package onboarding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/storage"
	"github.com/Tharak23/bridge-full-stack/store/onboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() models.OnboardingDraft {
	d := models.DefaultOnboardingDraft()
	d.ProfessionalType = "plumber"
	d.Name = "Asha Verma"
	d.Phone = "9876543210"
	d.TermsAccepted = true
	return d
}

func newService(store storage.Store, api *client.Client) *DefaultService {
	return &DefaultService{Draft: onboard.New(store), API: api}
}

func TestSubmitValidatesRequiredFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*models.OnboardingDraft)
	}{
		{"professionalType", func(d *models.OnboardingDraft) { d.ProfessionalType = "" }},
		{"name", func(d *models.OnboardingDraft) { d.Name = "" }},
		{"phone", func(d *models.OnboardingDraft) { d.Phone = "" }},
		{"termsAccepted", func(d *models.OnboardingDraft) { d.TermsAccepted = false }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			s := newService(storage.NewMemoryStore(), nil)
			d := completeDraft()
			tc.mutate(&d)
			s.Save(d)

			err := s.Submit(context.Background())
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestSubmitRequiresBackend(t *testing.T) {
	s := newService(storage.NewMemoryStore(), nil)
	s.Save(completeDraft())

	err := s.Submit(context.Background())
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve), "a missing backend is not a field error")
}

func TestSubmitClearsDraftOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/onboarding/provider", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := storage.NewMemoryStore()
	s := newService(store, client.New(srv.URL, nil, nil))
	s.Save(completeDraft())

	require.NoError(t, s.Submit(context.Background()))

	assert.Empty(t, s.Snapshot().Name, "the wizard resets after acceptance")
	_, present := store.Get(storage.KeyOnboardDraft)
	assert.False(t, present, "the persisted draft is deleted after acceptance")
}

func TestSubmitKeepsDraftOnBackendRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"phone already registered"}`, http.StatusConflict)
	}))
	defer srv.Close()

	store := storage.NewMemoryStore()
	s := newService(store, client.New(srv.URL, nil, nil))
	s.Save(completeDraft())

	err := s.Submit(context.Background())
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)

	assert.Equal(t, "Asha Verma", s.Snapshot().Name, "a rejected draft stays for correction")
	_, present := store.Get(storage.KeyOnboardDraft)
	assert.True(t, present)
}

func TestUpdatePersistsEachChange(t *testing.T) {
	store := storage.NewMemoryStore()
	s := newService(store, nil)

	require.True(t, s.Update(func(d *models.OnboardingDraft) { d.Name = "Asha Verma" }))
	_, present := store.Get(storage.KeyOnboardDraft)
	assert.True(t, present, "every field change is flushed")
}
