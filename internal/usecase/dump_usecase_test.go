package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/usecase"
)

// MockDumpRepository is a mock of DumpRepository
type MockDumpRepository struct {
	mock.Mock
}

func (m *MockDumpRepository) ReadCollection(ctx context.Context, collection string, limit int64) (int64, []bson.M, error) {
	args := m.Called(ctx, collection, limit)
	var docs []bson.M
	if args.Get(1) != nil {
		docs = args.Get(1).([]bson.M)
	}
	return args.Get(0).(int64), docs, args.Error(2)
}

func TestDumpUseCase_Dump(t *testing.T) {
	ctx := context.Background()
	oid := primitive.NewObjectID()
	reported := primitive.NewDateTimeFromTime(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))

	repo := &MockDumpRepository{}
	repo.On("ReadCollection", mock.Anything, domain.CollectionIncidentVotes, int64(1000)).Return(int64(1500), []bson.M{
		{"_id": oid, "incident_id": "i-1", "vote": "valid", "created_at": reported},
	}, nil)
	repo.On("ReadCollection", mock.Anything, domain.CollectionAlerts, int64(1000)).Return(int64(0), nil, assert.AnError)
	repo.On("ReadCollection", mock.Anything, domain.CollectionAreas, int64(1000)).Return(int64(1), []bson.M{
		{"_id": int64(1), "location": bson.M{"type": "Point", "coordinates": bson.A{106.7, 10.7}}, "refs": bson.A{oid}},
	}, nil)
	repo.On("ReadCollection", mock.Anything, mock.Anything, int64(1000)).Return(int64(0), []bson.M{}, nil)

	uc := usecase.NewDumpUseCase(repo, "zaloapp", 1000, zap.NewNop())
	dump := uc.Dump(ctx)

	assert.Equal(t, "zaloapp", dump.Database)
	_, err := time.Parse(time.RFC3339Nano, dump.GeneratedAt)
	require.NoError(t, err)
	assert.Len(t, dump.Collections, len(domain.Collections))

	votes := dump.Collections[domain.CollectionIncidentVotes]
	assert.Equal(t, int64(1500), votes.Count)
	require.Len(t, votes.Documents, 1)
	assert.Equal(t, oid.Hex(), votes.Documents[0]["_id"])
	assert.Equal(t, reported.Time().UTC(), votes.Documents[0]["created_at"])
	assert.Empty(t, votes.Error)

	alerts := dump.Collections[domain.CollectionAlerts]
	assert.Equal(t, assert.AnError.Error(), alerts.Error)
	assert.NotNil(t, alerts.Documents)
	assert.Empty(t, alerts.Documents)

	areas := dump.Collections[domain.CollectionAreas]
	require.Len(t, areas.Documents, 1)
	assert.Equal(t, []interface{}{oid.Hex()}, areas.Documents[0]["refs"])
	location, ok := areas.Documents[0]["location"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Point", location["type"])

	assert.NotNil(t, dump.Collections[domain.CollectionUsers].Documents)
}
