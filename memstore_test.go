package tether

import "testing"

func TestMemoryStore_Basics(t *testing.T) {
	store := NewMemoryStore()

	if store.Contains("volume") {
		t.Error("expected empty store")
	}
	if v := store.Get("volume"); v.IsValid() {
		t.Errorf("expected invalid Value for an absent key, got %s", v)
	}

	store.Set("volume", Int(50))
	if !store.Contains("volume") {
		t.Error("expected key after Set")
	}
	if v := store.Get("volume"); !v.Equal(Int(50)) {
		t.Errorf("expected 50, got %s", v)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}

	if err := store.Flush(); err != nil {
		t.Errorf("Flush error = %v", err)
	}
	if err := store.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}

func TestMemoryStore_Overwrite(t *testing.T) {
	store := NewMemoryStore()
	store.Set("volume", Int(50))
	store.Set("volume", Int(70))

	if v := store.Get("volume"); !v.Equal(Int(70)) {
		t.Errorf("expected 70, got %s", v)
	}
	if store.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", store.Len())
	}
}
