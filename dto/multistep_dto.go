package dto

// The wizard is partitioned into three steps. Each step owns its DTO so a
// step transition can be validated without touching later steps' fields.

type PersonalInfoDTO struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

type AddressDTO struct {
	AddressLine1 string `json:"addressLine1" validate:"required,max=200"`
	AddressLine2 string `json:"addressLine2" validate:"omitempty,max=200"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=100"`
	PostalCode   string `json:"postalCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=100"`
}

// PreferencesDTO flags all default to false when absent from the payload.
type PreferencesDTO struct {
	ReceiveNewsletter bool `json:"receiveNewsletter"`
	ReceiveUpdates    bool `json:"receiveUpdates"`
	MarketingConsent  bool `json:"marketingConsent"`
}

type AdditionalInfoDTO struct {
	Phone       string         `json:"phone" validate:"omitempty,max=30"`
	Preferences PreferencesDTO `json:"preferences"`
}

type MultiStepFormDTO struct {
	PersonalInfoDTO
	AddressDTO
	AdditionalInfoDTO
}
