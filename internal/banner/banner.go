package banner

// Banner is the public DTO for the hero carousel. StartsAt and EndsAt bound
// an optional display window; empty means unbounded on that side.
type Banner struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    *string `json:"image,omitempty"`
	Link     *string `json:"link,omitempty"`
	IsActive bool    `json:"-"`
	StartsAt string  `json:"-"`
	EndsAt   string  `json:"-"`
}
