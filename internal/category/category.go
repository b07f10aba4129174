package category

// Category is the public DTO for the category navigation API.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Category struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// Brand rows back the brand filter on the shop page.
type Brand struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Slug string  `json:"slug"`
	Logo *string `json:"logo,omitempty"`
}
