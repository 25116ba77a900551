package history

import (
	"fmt"
	"testing"
)

func TestAddEvictsPastCapacity(t *testing.T) {
	store := NewStore(20)

	for i := 1; i <= 25; i++ {
		store.Add(Entry{ID: fmt.Sprintf("%d", i)})
	}

	if store.Len() != 20 {
		t.Errorf("Expected 20 entries, got %d", store.Len())
	}

	entries := store.List()
	if entries[0].ID != "25" {
		t.Errorf("Expected newest entry first, got ID %s", entries[0].ID)
	}
	if entries[len(entries)-1].ID != "6" {
		t.Errorf("Expected oldest retained entry to be 6, got ID %s", entries[len(entries)-1].ID)
	}
}

func TestListReturnsCopy(t *testing.T) {
	store := NewStore(5)
	store.Add(Entry{ID: "a"})

	entries := store.List()
	entries[0].ID = "mutated"

	if store.List()[0].ID != "a" {
		t.Error("Mutating the listed slice should not affect the store")
	}
}

func TestClear(t *testing.T) {
	store := NewStore(5)
	store.Add(Entry{ID: "a"})
	store.Add(Entry{ID: "b"})

	store.Clear()

	if store.Len() != 0 {
		t.Errorf("Expected empty store after Clear, got %d entries", store.Len())
	}
}
