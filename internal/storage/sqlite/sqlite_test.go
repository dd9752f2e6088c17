package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/billsplit/internal/models"
	"github.com/mmynk/billsplit/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "billsplit-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer func() { store.Close() }()

	ctx := context.Background()

	t.Run("Get missing key returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Put then Get round-trips", func(t *testing.T) {
		if err := store.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := store.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(got) != `{"a":1}` {
			t.Errorf("Get = %s, want {\"a\":1}", got)
		}
		updatedAt, err := store.UpdatedAt(ctx, "k")
		if err != nil || updatedAt == 0 {
			t.Errorf("UpdatedAt = %d, %v", updatedAt, err)
		}
	})

	t.Run("Put replaces existing value", func(t *testing.T) {
		if err := store.Put(ctx, "k", []byte(`{"a":2}`)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, _ := store.Get(ctx, "k")
		if string(got) != `{"a":2}` {
			t.Errorf("Get = %s, want {\"a\":2}", got)
		}
	})

	t.Run("Delete removes key and tolerates missing keys", func(t *testing.T) {
		if err := store.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := store.Delete(ctx, "k"); err != nil {
			t.Errorf("Delete of missing key failed: %v", err)
		}
	})

	t.Run("Document survives reopening the database", func(t *testing.T) {
		doc := storage.NewDocument(store, storage.BillKey, models.NewBill)
		bill := models.NewBill()
		alice := bill.AddPerson("Alice")
		if _, err := bill.AddItem(alice.ID, "Pad Thai", 80); err != nil {
			t.Fatalf("AddItem failed: %v", err)
		}
		if err := doc.Save(ctx, bill); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		store.Close()

		reopened, err := New(dbPath)
		if err != nil {
			t.Fatalf("Failed to reopen store: %v", err)
		}
		store = reopened

		loaded, found := storage.NewDocument(reopened, storage.BillKey, models.NewBill).Load(ctx)
		if !found {
			t.Fatal("expected stored bill to be found")
		}
		if len(loaded.People) != 1 || loaded.People[0].ID != alice.ID {
			t.Fatalf("unexpected people: %+v", loaded.People)
		}
		if loaded.People[0].Food() != 80 {
			t.Errorf("Food() = %v, want 80", loaded.People[0].Food())
		}
	})
}
