package domain

// Коллекции документного хранилища
const (
	CollectionUsers               = "users"
	CollectionAreas               = "areas"
	CollectionUserAreas           = "user_areas"
	CollectionIncidentTypes       = "incident_types"
	CollectionIncidents           = "incidents"
	CollectionIncidentHistory     = "incident_history"
	CollectionIncidentMedia       = "incident_media"
	CollectionIncidentAssignments = "incident_assignments"
	CollectionIncidentVotes       = "incident_votes"
	CollectionAlerts              = "alerts"
	CollectionSupportContacts     = "support_contacts"
)

// Collections - все коллекции в порядке зависимостей
var Collections = []string{
	CollectionUsers,
	CollectionAreas,
	CollectionUserAreas,
	CollectionIncidentTypes,
	CollectionIncidents,
	CollectionIncidentHistory,
	CollectionIncidentMedia,
	CollectionIncidentAssignments,
	CollectionIncidentVotes,
	CollectionAlerts,
	CollectionSupportContacts,
}

const GeoJSONPoint = "Point"

// GeoPoint - GeoJSON точка, координаты всегда [lon, lat]
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{
		Type:        GeoJSONPoint,
		Coordinates: []float64{lon, lat},
	}
}

func (p GeoPoint) Lon() float64 { return p.Coordinates[0] }
func (p GeoPoint) Lat() float64 { return p.Coordinates[1] }
