package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoledger/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "data.json"))
}

func TestLoad_MissingFile(t *testing.T) {
	s := newTestStore(t)
	assert.Equal(t, Empty(), s.Load())
}

func TestLoad_MalformedFileFallsBackToEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	assert.Equal(t, Empty(), s.Load())
}

func TestLoad_NormalizesNullsAndCounters(t *testing.T) {
	s := newTestStore(t)
	raw := `{"users": null, "dinos": [{"id": 4, "name": "Rex", "dino_type": "Creature", "quantity": 1, "user_id": 1}]}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	doc := s.Load()
	assert.NotNil(t, doc.Users)
	assert.Len(t, doc.Items, 1)
	assert.Equal(t, 1, doc.NextUserID)
	assert.Equal(t, 5, doc.NextItemID)
}

func TestLoad_ReadsHistoricalLayout(t *testing.T) {
	s := newTestStore(t)
	raw := `{
  "users": [{"id": 1, "username": "rex", "code": "abc", "created_at": "2024-05-01T10:00:00.123456"}],
  "dinos": [{"id": 1, "name": "Ptéro", "dino_type": "Token", "purchase_price": 10.0, "sell_price": 25.0,
             "quantity": 4, "tax_rate": 0.1, "notes": "", "user_id": 1, "created_at": "2024-05-01T10:01:00"}],
  "next_user_id": 2,
  "next_dino_id": 2
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(raw), 0o644))

	doc := s.Load()
	require.Len(t, doc.Users, 1)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "rex", doc.Users[0].Username)
	assert.Equal(t, "Ptéro", doc.Items[0].Name)
	assert.Equal(t, model.CategoryToken, doc.Items[0].Category)
	assert.Equal(t, 2, doc.NextItemID)
}

func TestSave_IsByteStable(t *testing.T) {
	s := newTestStore(t)
	doc := Empty()
	doc.Users = append(doc.Users, model.User{ID: 1, Username: "rex", Code: "c0de", CreatedAt: model.Now()})
	doc.Items = append(doc.Items, model.Item{
		ID: 1, Name: "Ankylo <&>", Category: model.CategoryCreature,
		PurchasePrice: 1.25, SellPrice: 3.5, Quantity: 2, TaxRate: 0.1, OwnerID: 1, CreatedAt: model.Now(),
	})
	doc.NextUserID, doc.NextItemID = 2, 2
	require.NoError(t, s.Save(doc))

	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	require.NoError(t, s.Save(s.Load()))
	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Contains(t, string(first), "Ankylo <&>")
	assert.Contains(t, string(first), "\n  \"users\"")
}

func TestSave_PreservesNonASCII(t *testing.T) {
	s := newTestStore(t)
	doc := Empty()
	doc.Items = append(doc.Items, model.Item{ID: 1, Name: "Créature spéciale", Category: model.CategoryCreature, Quantity: 1, OwnerID: 1})
	require.NoError(t, s.Save(doc))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Créature spéciale")
}

func TestSave_ReportsWriteFailure(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", "data.json"))
	assert.Error(t, s.Save(Empty()))
}

func TestUpdate_ErrorSkipsSave(t *testing.T) {
	s := newTestStore(t)
	boom := errors.New("boom")

	err := s.Update(func(doc *Document) error {
		doc.NextUserID = 99
		return boom
	})

	assert.ErrorIs(t, err, boom)
	_, statErr := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestUpdate_SerializesConcurrentWriters(t *testing.T) {
	s := newTestStore(t)
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Update(func(doc *Document) error {
				doc.Items = append(doc.Items, model.Item{ID: doc.NextItemID, Name: "x", Category: model.CategoryToken, Quantity: 1, OwnerID: 1})
				doc.NextItemID++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc := s.Load()
	assert.Len(t, doc.Items, writers)
	assert.Equal(t, writers+1, doc.NextItemID)

	seen := map[int]bool{}
	for _, it := range doc.Items {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}
