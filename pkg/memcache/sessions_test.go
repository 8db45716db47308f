package mem

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hopa/internal/models/response_models"
)

func newSession(id, code string) *response_models.QuizSession {
	return &response_models.QuizSession{
		ID:        id,
		Code:      code,
		HostID:    "host-1",
		CreatedAt: time.Now(),
	}
}

func TestPutGet(t *testing.T) {
	store := NewQuizSessions()
	store.Put(newSession("s1", "ABC123"), time.Minute)

	got, ok := store.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, "s1", got.ID)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestGetByCode(t *testing.T) {
	store := NewQuizSessions()
	store.Put(newSession("s1", "ABC123"), time.Minute)

	got, ok := store.GetByCode("ABC123")
	assert.True(t, ok)
	assert.Equal(t, "s1", got.ID)

	_, ok = store.GetByCode("ZZZZZZ")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	store := NewQuizSessions()
	store.Put(newSession("s1", "ABC123"), 10*time.Millisecond)

	time.Sleep(20 * time.Millisecond)

	_, ok := store.Get("s1")
	assert.False(t, ok)

	// Expiry also drops the code mapping.
	_, ok = store.GetByCode("ABC123")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := NewQuizSessions()
	store.Put(newSession("s1", "ABC123"), time.Minute)
	store.Delete("s1")

	_, ok := store.Get("s1")
	assert.False(t, ok)
	_, ok = store.GetByCode("ABC123")
	assert.False(t, ok)

	// Deleting an unknown id is a no-op.
	store.Delete("missing")
}

func TestAddMember(t *testing.T) {
	store := NewQuizSessions()
	session := newSession("s1", "ABC123")
	session.Members = []string{"host-1"}
	store.Put(session, time.Minute)

	got, found, err := store.AddMember("s1", "p2", 3)
	assert.True(t, found)
	assert.NoError(t, err)
	assert.Equal(t, []string{"host-1", "p2"}, got.Members)

	// Re-adding an existing member is a no-op.
	got, found, err = store.AddMember("s1", "p2", 3)
	assert.True(t, found)
	assert.NoError(t, err)
	assert.Equal(t, []string{"host-1", "p2"}, got.Members)

	_, found, err = store.AddMember("s1", "p3", 3)
	assert.True(t, found)
	assert.NoError(t, err)

	_, found, err = store.AddMember("s1", "p4", 3)
	assert.True(t, found)
	assert.ErrorIs(t, err, ErrCapacityReached)

	_, found, _ = store.AddMember("missing", "p2", 3)
	assert.False(t, found)
}

func TestGetReturnsSnapshot(t *testing.T) {
	store := NewQuizSessions()
	session := newSession("s1", "ABC123")
	session.Members = []string{"host-1"}
	store.Put(session, time.Minute)

	// Neither the original pointer nor a read result aliases the stored
	// struct.
	session.Members = append(session.Members, "smuggled")
	first, _ := store.Get("s1")
	first.Members = append(first.Members, "also-smuggled")

	second, _ := store.Get("s1")
	assert.Equal(t, []string{"host-1"}, second.Members)
}

func TestConcurrentAddAndGet(t *testing.T) {
	store := NewQuizSessions()
	session := newSession("s1", "ABC123")
	session.Members = []string{"host-1"}
	store.Put(session, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(2)
		player := fmt.Sprintf("p%d", i+2)
		go func() {
			defer wg.Done()
			_, found, err := store.AddMember("s1", player, 8)
			assert.True(t, found)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			got, ok := store.Get("s1")
			if assert.True(t, ok) {
				for _, m := range got.Members {
					assert.NotEmpty(t, m)
				}
			}
		}()
	}
	wg.Wait()

	got, ok := store.Get("s1")
	assert.True(t, ok)
	assert.Len(t, got.Members, 7)
}

func TestPutOverwrites(t *testing.T) {
	store := NewQuizSessions()
	store.Put(newSession("s1", "ABC123"), time.Minute)

	updated := newSession("s1", "ABC123")
	updated.Members = []string{"host-1", "p2"}
	store.Put(updated, time.Minute)

	got, ok := store.Get("s1")
	assert.True(t, ok)
	assert.Equal(t, []string{"host-1", "p2"}, got.Members)
}
