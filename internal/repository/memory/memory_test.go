package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/domain/repository"
	"github.com/incident-intake/internal/repository/memory"
)

func TestDocumentStore_InsertAndFind(t *testing.T) {
	store := memory.NewDocumentStore(nil)
	ctx := context.Background()

	area := domain.Area{
		ID:        1,
		Name:      "District A",
		City:      "X",
		Location:  domain.NewGeoPoint(106.7, 10.8),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	id, err := store.InsertOne(ctx, domain.CollectionAreas, area)
	require.NoError(t, err)
	assert.EqualValues(t, 1, id)

	// int vs int64 в фильтре должны совпадать
	var got domain.Area
	found, err := store.FindOne(ctx, domain.CollectionAreas, bson.M{"_id": 1}, &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "District A", got.Name)
	assert.Equal(t, []float64{106.7, 10.8}, got.Location.Coordinates)
	assert.True(t, area.CreatedAt.Equal(got.CreatedAt))

	found, err = store.FindOne(ctx, domain.CollectionAreas, bson.M{"_id": int64(2)}, nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDocumentStore_GeneratesObjectID(t *testing.T) {
	store := memory.NewDocumentStore(nil)

	id, err := store.InsertOne(context.Background(), domain.CollectionUserAreas, domain.UserArea{UserID: "u1", AreaID: 1})
	require.NoError(t, err)

	oid, ok := id.(primitive.ObjectID)
	require.True(t, ok)
	assert.False(t, oid.IsZero())
}

func TestDocumentStore_DuplicateID(t *testing.T) {
	store := memory.NewDocumentStore(nil)
	ctx := context.Background()

	_, err := store.InsertOne(ctx, domain.CollectionIncidentTypes, domain.IncidentType{ID: 5, Name: "Flood"})
	require.NoError(t, err)

	_, err = store.InsertOne(ctx, domain.CollectionIncidentTypes, domain.IncidentType{ID: 5, Name: "Fire"})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	assert.Equal(t, 1, store.Count(domain.CollectionIncidentTypes))
}

func TestDocumentStore_UniqueIndex(t *testing.T) {
	store := memory.NewDocumentStore(nil)
	store.EnsureUnique(domain.CollectionIncidentVotes, "incident_id", "user_id")
	ctx := context.Background()

	_, err := store.InsertOne(ctx, domain.CollectionIncidentVotes, domain.IncidentVote{IncidentID: "i1", UserID: "u1", Vote: domain.VoteValid})
	require.NoError(t, err)

	_, err = store.InsertOne(ctx, domain.CollectionIncidentVotes, domain.IncidentVote{IncidentID: "i1", UserID: "u2", Vote: domain.VoteValid})
	require.NoError(t, err)

	_, err = store.InsertOne(ctx, domain.CollectionIncidentVotes, domain.IncidentVote{IncidentID: "i1", UserID: "u1", Vote: domain.VoteInvalid})
	assert.ErrorIs(t, err, repository.ErrDuplicateKey)

	docs := store.Documents(domain.CollectionIncidentVotes)
	require.Len(t, docs, 2)
	assert.Equal(t, "valid", docs[0]["vote"])
}

func TestDocumentStore_FindLast(t *testing.T) {
	store := memory.NewDocumentStore(nil)
	ctx := context.Background()

	var last domain.SupportContact
	found, err := store.FindLast(ctx, domain.CollectionSupportContacts, "_id", &last)
	require.NoError(t, err)
	assert.False(t, found)

	for _, id := range []int64{3, 10, 7} {
		_, err := store.InsertOne(ctx, domain.CollectionSupportContacts, domain.SupportContact{ID: id, Name: "c"})
		require.NoError(t, err)
	}

	found, err = store.FindLast(ctx, domain.CollectionSupportContacts, "_id", &last)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(10), last.ID)
}

func TestDocumentStore_CanceledContext(t *testing.T) {
	store := memory.NewDocumentStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.InsertOne(ctx, domain.CollectionAlerts, domain.Alert{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, store.Count(domain.CollectionAlerts))
}

func TestSequenceRepository_NextAndSeed(t *testing.T) {
	seq := memory.NewSequenceRepository()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := seq.Next(ctx, "support_contacts")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, seq.Seed(ctx, "support_contacts", 2))
	got, err := seq.Next(ctx, "support_contacts")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got, "seed below current value must not rewind")

	require.NoError(t, seq.Seed(ctx, "support_contacts", 40))
	got, err = seq.Next(ctx, "support_contacts")
	require.NoError(t, err)
	assert.Equal(t, int64(41), got)
}

func TestSequenceRepository_Concurrent(t *testing.T) {
	seq := memory.NewSequenceRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	seen := make(chan int64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := seq.Next(ctx, "c")
			assert.NoError(t, err)
			seen <- v
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool)
	for v := range seen {
		unique[v] = true
	}
	assert.Len(t, unique, n)
	assert.True(t, unique[1])
	assert.True(t, unique[n])
}
