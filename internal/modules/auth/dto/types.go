package dto

type SignupInput struct {
	Email          string
	Username       string
	Password       string
	RepeatPassword string
}

// SignupOutput carries the encrypted email reference the code screen
// needs as a query parameter.
type SignupOutput struct {
	EncryptedEmail string
	Message        string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Message string
}

// Account status values returned by checkEmail and checkStatus.
const (
	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

type CheckEmailInput struct {
	Email string
	Type  string // flow discriminator forwarded from the ?type= query param
}

type CheckEmailOutput struct {
	Status         string
	EncryptedEmail string
	Message        string
}

type CheckCodeInput struct {
	Email string
	Code  string
}

type CheckCodeOutput struct {
	Message string
}

type SendEmailOutput struct {
	EncryptedCode string
	Message       string
}

type ChangePasswordInput struct {
	Email    string
	Password string
	Repeat   string
}

// CodeScreenInput is decoded from the /checkCode?e=&c= query parameters.
type CodeScreenInput struct {
	EncryptedEmail string
	EncryptedCode  string
}

// CodeScreenOutput is the prepared state for the verification screen:
// the decrypted email plus an optional pre-filled code.
type CodeScreenOutput struct {
	Email string
	Code  string
}

type GoogleLoginInput struct {
	Credential string
	RememberMe bool
}

type GoogleLoginOutput struct {
	Message string
}

// GoogleRedirectResult is parsed from the OAuth redirect query string on
// the loopback callback server.
type GoogleRedirectResult struct {
	Token    string
	UserID   string
	Username string
	Email    string
	Message  string
}
