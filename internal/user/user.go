package user

// User is a storefront account. Profile fields beyond the name come from the
// beauty questionnaire shown after sign-up and are all optional.
type User struct {
	ID           int     `json:"userId"`
	Email        string  `json:"email"`
	Password     string  `json:"password,omitempty"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Phone        string  `json:"phone"`
	Gender       string  `json:"gender"`
	SkinType     *string `json:"skinType,omitempty"`
	SkinConcerns *string `json:"skinConcerns,omitempty"`
	DateOfBirth  *string `json:"dateOfBirth,omitempty"`
	IsAdmin      bool    `json:"isAdmin,omitempty"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// sanitizeUser strips the password hash before a User leaves the API.
func sanitizeUser(u User) User {
	u.Password = ""
	return u
}
