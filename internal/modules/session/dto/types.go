package dto

// SessionOutput is the probe result consumed by the app shell.
type SessionOutput struct {
	Authenticated   bool
	ProfileComplete bool
}

// IdentityInput carries display fields cached for OAuth redirect flows.
type IdentityInput struct {
	Username    string
	Email       string
	LegacyToken string
}

type IdentityOutput struct {
	Username string
	Email    string
}
