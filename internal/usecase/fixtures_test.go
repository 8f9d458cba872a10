package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/incident-intake/internal/domain"
	"github.com/incident-intake/internal/repository/memory"
	"github.com/incident-intake/internal/usecase"
	"github.com/incident-intake/internal/usecase/dto"
)

var (
	fixtureTime  = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	fixtureStamp = dto.NewTimestamp(fixtureTime)
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool { return &v }
func float64Ptr(v float64) *float64 { return &v }

// newStore - хранилище в памяти с теми же уникальными индексами, что создаются в Mongo
func newStore() *memory.DocumentStore {
	store := memory.NewDocumentStore(zap.NewNop())
	store.EnsureUnique(domain.CollectionUsers, "email")
	store.EnsureUnique(domain.CollectionUserAreas, "user_id", "area_id")
	store.EnsureUnique(domain.CollectionIncidentVotes, "incident_id", "user_id")
	return store
}

type intake struct {
	store          *memory.DocumentStore
	users          *usecase.UserUseCase
	areas          *usecase.AreaUseCase
	incidentTypes  *usecase.IncidentTypeUseCase
	incidents      *usecase.IncidentUseCase
	alerts         *usecase.AlertUseCase
	supportContact *usecase.SupportContactUseCase
}

func newIntake() *intake {
	store := newStore()
	logger := zap.NewNop()
	return &intake{
		store:          store,
		users:          usecase.NewUserUseCase(store, logger),
		areas:          usecase.NewAreaUseCase(store, logger),
		incidentTypes:  usecase.NewIncidentTypeUseCase(store, logger),
		incidents:      usecase.NewIncidentUseCase(store, logger),
		alerts:         usecase.NewAlertUseCase(store, logger),
		supportContact: usecase.NewSupportContactUseCase(store, memory.NewSequenceRepository(), logger),
	}
}

func userRequest(email string) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		ID:           uuid.NewString(),
		Name:         "Nguyen Van A",
		Phone:        "+84901234567",
		Email:        email,
		PasswordHash: "$2b$12$hash",
		Role:         "citizen",
		CreatedAt:    fixtureStamp,
	}
}

func areaRequest(id int64) dto.CreateAreaRequest {
	return dto.CreateAreaRequest{
		ID:        int64Ptr(id),
		Name:      "Ben Nghe",
		City:      "Ho Chi Minh City",
		Location:  dto.NewPointLocation(106.7009, 10.7769),
		CreatedAt: fixtureStamp,
	}
}

func incidentTypeRequest(id int64) dto.CreateIncidentTypeRequest {
	return dto.CreateIncidentTypeRequest{
		ID:              int64Ptr(id),
		Name:            "Flooding",
		DefaultPriority: intPtr(2),
		TargetSLAHours:  intPtr(24),
		CreatedAt:       fixtureStamp,
	}
}

func incidentRequest(typeID int64, reporterID string, areaID int64) dto.CreateIncidentRequest {
	return dto.CreateIncidentRequest{
		ID:             uuid.NewString(),
		IncidentTypeID: int64Ptr(typeID),
		Summary:        "Street flooded",
		Description:    strPtr("Water up to the knees after rain"),
		Status:         "sent",
		Priority:       intPtr(2),
		ReporterID:     reporterID,
		AreaID:         int64Ptr(areaID),
		LocationText:   strPtr("Nguyen Hue, District 1"),
		Location: &dto.LocationInput{
			Coordinates: []*float64{float64Ptr(106.7031), float64Ptr(10.7743)},
		},
		ReportedAt: fixtureStamp,
		UpdatedAt:  fixtureStamp,
	}
}

// seeded - пользователь, район, тип и обращение, на которые ссылаются зависимые записи
type seeded struct {
	userID     string
	operatorID string
	areaID     int64
	typeID     int64
	incidentID string
}

func (in *intake) seed(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()

	citizen := userRequest("citizen@example.com")
	_, err := in.users.CreateUser(ctx, citizen)
	require.NoError(t, err)

	operator := userRequest("operator@example.com")
	operator.Role = "operator"
	_, err = in.users.CreateUser(ctx, operator)
	require.NoError(t, err)

	_, err = in.areas.CreateArea(ctx, areaRequest(1))
	require.NoError(t, err)

	_, err = in.incidentTypes.CreateIncidentType(ctx, incidentTypeRequest(7))
	require.NoError(t, err)

	incident := incidentRequest(7, citizen.ID, 1)
	_, err = in.incidents.CreateIncident(ctx, incident)
	require.NoError(t, err)

	return seeded{
		userID:     citizen.ID,
		operatorID: operator.ID,
		areaID:     1,
		typeID:     7,
		incidentID: incident.ID,
	}
}

// MockDocumentStore is a mock of DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) FindOne(ctx context.Context, collection string, filter bson.M, out interface{}) (bool, error) {
	args := m.Called(ctx, collection, filter, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentStore) InsertOne(ctx context.Context, collection string, doc interface{}) (interface{}, error) {
	args := m.Called(ctx, collection, doc)
	return args.Get(0), args.Error(1)
}

func (m *MockDocumentStore) FindLast(ctx context.Context, collection, sortField string, out interface{}) (bool, error) {
	args := m.Called(ctx, collection, sortField, out)
	return args.Bool(0), args.Error(1)
}

func (m *MockDocumentStore) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
