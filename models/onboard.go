package models

// WorkingHours is one day's working window in the provider onboarding wizard.
type WorkingHours struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// OnboardingDraft is the flat field bag behind the service-provider
// onboarding wizard. It is flushed to storage on every field change and
// deleted on successful submission. The in-memory photo attachment is
// excluded from the persisted snapshot and does not survive a restart.
type OnboardingDraft struct {
	ProfessionalType     string         `json:"professionalType"`
	Phone                string         `json:"phone"`
	CountryCode          string         `json:"countryCode"`
	Name                 string         `json:"name"`
	DateOfBirth          string         `json:"dateOfBirth"`
	PhotoURL             string         `json:"photoUrl"`
	Photo                []byte         `json:"-"` // not persisted
	Gender               string         `json:"gender"`
	ServicesOffered      string         `json:"servicesOffered"`
	SelectedServices     []string       `json:"selectedServices"`
	ServicesOfferedOther string         `json:"servicesOfferedOther"`
	ExperienceYears      string         `json:"experienceYears"`
	ServiceArea          string         `json:"serviceArea"`
	BankAccountNumber    string         `json:"bankAccountNumber"`
	UpiID                string         `json:"upiId"`
	WorkingHours         []WorkingHours `json:"workingHours"`
	DaysAvailable        []string       `json:"daysAvailable"`
	TravelRadiusKm       string         `json:"travelRadiusKm"`
	TermsAccepted        bool           `json:"termsAccepted"`
}

// DefaultOnboardingDraft returns the empty wizard state.
func DefaultOnboardingDraft() OnboardingDraft {
	return OnboardingDraft{
		CountryCode:      "+91",
		SelectedServices: []string{},
		WorkingHours:     []WorkingHours{},
		DaysAvailable:    []string{},
	}
}
