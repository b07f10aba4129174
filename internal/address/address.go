package address

// Address is a saved shipping destination. is_default is a convention, not a
// constraint: the repository clears the previous default when a new one is
// flagged.
type Address struct {
	ID           int    `json:"addressId"`
	UserID       int    `json:"userId"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode,omitempty"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"isDefault"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// missingRequired reports whether a mandatory field is empty. Line 2, postal
// code and country are optional.
func (a Address) missingRequired() bool {
	return a.FullName == "" || a.Phone == "" || a.AddressLine1 == "" || a.City == "" || a.State == ""
}
