package auth

// Profile is the persisted account record, keyed by email.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Age   int    `json:"age,omitempty"`

	// Color is the account accent used by clients. Defaults to the app
	// accent when the user never picked one.
	Color string `json:"color"`

	// AvatarLetter is the upper-cased first letter of the display name.
	AvatarLetter string `json:"avatarLetter"`

	// CreatedAt is epoch milliseconds of first sign-in.
	CreatedAt int64 `json:"createdAt"`
}

// --- UseCase Inputs ---

// LoginInput identifies the account to sign in. A profile is created on
// first sign-in with the given name.
type LoginInput struct {
	Email string
	Name  string
}

// UpdateProfileInput carries the editable profile fields. Empty strings and
// zero values leave the stored field unchanged.
type UpdateProfileInput struct {
	Name  string
	Phone string
	Age   int
	Color string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	Profile Profile
}

type UpdateProfileOutput struct {
	Profile Profile
}
