package banner

import "testing"

func TestListHonoursActiveFlagAndWindow(t *testing.T) {
	seed := []Banner{
		{ID: 1, Title: "Summer Sale", IsActive: true},
		{ID: 2, Title: "Draft", IsActive: false},
		{ID: 3, Title: "Expired", IsActive: true, EndsAt: "2020-01-01T00:00:00Z"},
		{ID: 4, Title: "Future", IsActive: true, StartsAt: "2099-01-01T00:00:00Z"},
		{ID: 5, Title: "Open Window", IsActive: true, StartsAt: "2020-01-01T00:00:00Z"},
	}
	s := NewService(NewInMemoryRepository(seed))

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 visible banners, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 5 {
		t.Fatalf("unexpected banners: %+v", got)
	}
}

func TestListDefaultLimit(t *testing.T) {
	seed := make([]Banner, 0, 6)
	for i := 1; i <= 6; i++ {
		seed = append(seed, Banner{ID: i, Title: "B", IsActive: true})
	}
	s := NewService(NewInMemoryRepository(seed))

	got, err := s.List(0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != defaultLimit {
		t.Fatalf("expected %d banners by default, got %d", defaultLimit, len(got))
	}
}
