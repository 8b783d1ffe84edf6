package dto

// StatsInput is the profile-completion form.
type StatsInput struct {
	Weight int
	Height int
	Age    int
	Gender string
}

// AccountInput is the settings form. Password is only sent when
// non-empty.
type AccountInput struct {
	Username string
	Password string
	Weight   int
	Height   int
	Age      int
	Gender   string
}

type AccountOutput struct {
	Username string
	Email    string
	Weight   int
	Height   int
	Age      int
	Gender   string // user-facing value (male/female/other)
}
