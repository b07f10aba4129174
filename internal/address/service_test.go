package address

import "testing"

func validAddress() Address {
	return Address{
		FullName:     "Anita Shrestha",
		Phone:        "9841000000",
		AddressLine1: "12 Lazimpat Road",
		City:         "Kathmandu",
		State:        "Bagmati",
		PostalCode:   "44600",
	}
}

func TestCreateFillsDefaults(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	created, err := s.Create(7, validAddress())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Country != "Nepal" {
		t.Fatalf("expected default country Nepal, got %q", created.Country)
	}
	if created.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", created.UserID)
	}
}

func TestCreateRejectsMissingFields(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	a := validAddress()
	a.City = "  "
	if _, err := s.Create(7, a); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestNewDefaultClearsPreviousDefault(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	a := validAddress()
	a.IsDefault = true
	first, err := s.Create(7, a)
	if err != nil {
		t.Fatalf("create first: %v", err)
	}

	b := validAddress()
	b.AddressLine1 = "45 Patan Durbar Square"
	b.IsDefault = true
	if _, err := s.Create(7, b); err != nil {
		t.Fatalf("create second: %v", err)
	}

	addrs, err := s.ListByUser(7)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	defaults := 0
	for _, got := range addrs {
		if got.IsDefault {
			defaults++
			if got.ID == first.ID {
				t.Fatalf("old default was not cleared")
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default, got %d", defaults)
	}
}

func TestUpdateAndDeleteAreOwnerOnly(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	created, err := s.Create(7, validAddress())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// foreign callers see 404, not 403, so address ids cannot be probed
	if _, err := s.Update(8, created.ID, validAddress()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on foreign update, got %v", err)
	}
	if err := s.Delete(8, created.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on foreign delete, got %v", err)
	}

	if err := s.Delete(7, created.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	addrs, _ := s.ListByUser(7)
	if len(addrs) != 0 {
		t.Fatalf("expected no addresses left, got %d", len(addrs))
	}
}
