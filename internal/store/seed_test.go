package store

import "testing"

func TestSeedSampleDataPopulatesEmptyStore(t *testing.T) {
	m := NewMemoryStore()

	n, err := SeedSampleData(m)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 4 {
		t.Fatalf("inserted = %d, want 4", n)
	}

	craftsmen, err := m.ListCraftsmen(CraftsmanFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(craftsmen) != 4 {
		t.Fatalf("craftsmen = %d, want 4", len(craftsmen))
	}
	for _, c := range craftsmen {
		if !c.IsVerified {
			t.Fatalf("seeded craftsman %s must be verified", c.Email)
		}
		if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
			t.Fatalf("seeded craftsman %s missing timestamps", c.Email)
		}
	}
	if craftsmen[0].Email != "mohamed.ahmed@email.com" {
		t.Fatalf("first seeded email = %q", craftsmen[0].Email)
	}
}

func TestSeedSampleDataSkipsNonEmptyStore(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.CreateCraftsman(testCraftsman("existing@x.com")); err != nil {
		t.Fatalf("create craftsman: %v", err)
	}

	n, err := SeedSampleData(m)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != 0 {
		t.Fatalf("inserted = %d, want 0 on non-empty store", n)
	}
	count, err := m.CraftsmanCount()
	if err != nil || count != 1 {
		t.Fatalf("count = %d, %v, want 1", count, err)
	}
}
