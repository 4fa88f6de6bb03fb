// Package onboarding manages the service-provider onboarding wizard: the
// continuously persisted draft and its submission to the backend.
package onboarding

import (
	"context"
	"fmt"

	"github.com/Tharak23/bridge-full-stack/client"
	"github.com/Tharak23/bridge-full-stack/models"
	"github.com/Tharak23/bridge-full-stack/store/onboard"

	"go.uber.org/zap"
)

// ValidationError names the wizard field that blocked submission.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Service drives the provider onboarding wizard.
type Service interface {
	// Snapshot returns the current wizard state.
	Snapshot() models.OnboardingDraft
	// Save replaces the wizard state, flushing it to storage.
	Save(state models.OnboardingDraft) bool
	// Update applies a mutation to the wizard state, flushing the result.
	Update(fn func(*models.OnboardingDraft)) bool
	// Submit validates the wizard, sends it to the backend and deletes the
	// persisted draft only after the backend accepted it.
	Submit(ctx context.Context) error
}

// DefaultService implements Service.
type DefaultService struct {
	Draft  *onboard.Draft
	API    *client.Client
	Logger *zap.Logger
}

func (s *DefaultService) Snapshot() models.OnboardingDraft {
	return s.Draft.Snapshot()
}

func (s *DefaultService) Save(state models.OnboardingDraft) bool {
	return s.Draft.Put(state)
}

func (s *DefaultService) Update(fn func(*models.OnboardingDraft)) bool {
	return s.Draft.Update(fn)
}

// validate checks the fields every submission needs. Errors surface before
// any network call so an incomplete wizard never leaves partial state.
func validate(d models.OnboardingDraft) error {
	if d.ProfessionalType == "" {
		return &ValidationError{Field: "professionalType", Message: "professional type is required"}
	}
	if d.Name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if d.Phone == "" {
		return &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if !d.TermsAccepted {
		return &ValidationError{Field: "termsAccepted", Message: "terms must be accepted"}
	}
	return nil
}

func (s *DefaultService) Submit(ctx context.Context) error {
	d := s.Draft.Snapshot()
	if err := validate(d); err != nil {
		return err
	}
	if s.API == nil {
		return fmt.Errorf("onboarding submission requires a backend connection")
	}
	if err := s.API.SubmitProviderOnboarding(ctx, d); err != nil {
		return err
	}
	if !s.Draft.Clear() {
		logger := s.Logger
		if logger == nil {
			logger = zap.L()
		}
		logger.Warn("submitted onboarding draft could not be deleted")
	}
	return nil
}
