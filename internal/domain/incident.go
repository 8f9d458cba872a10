package domain

import "time"

type IncidentStatus string

const (
	IncidentStatusSent       IncidentStatus = "sent"
	IncidentStatusProcessing IncidentStatus = "processing"
	IncidentStatusResolved   IncidentStatus = "resolved"
	IncidentStatusReopened   IncidentStatus = "reopened"
)

// IncidentStatuses - все допустимые статусы
var IncidentStatuses = []IncidentStatus{
	IncidentStatusSent,
	IncidentStatusProcessing,
	IncidentStatusResolved,
	IncidentStatusReopened,
}

type IncidentType struct {
	ID              int64     `bson:"_id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	DefaultPriority int       `bson:"default_priority" json:"default_priority"`
	TargetSLAHours  int       `bson:"target_sla_hours" json:"target_sla_hours"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// Incident - обращение гражданина. citizen_confirmed и resolved_at хранятся как null, если не заданы
type Incident struct {
	ID               string         `bson:"_id" json:"id"`
	IncidentTypeID   int64          `bson:"incident_type_id" json:"incident_type_id"`
	Summary          string         `bson:"summary" json:"summary"`
	Description      string         `bson:"description" json:"description"`
	Status           IncidentStatus `bson:"status" json:"status"`
	Priority         int            `bson:"priority" json:"priority"`
	ReporterID       string         `bson:"reporter_id" json:"reporter_id"`
	AreaID           int64          `bson:"area_id" json:"area_id"`
	LocationText     string         `bson:"location_text" json:"location_text"`
	Location         GeoPoint       `bson:"location" json:"location"`
	CitizenConfirmed *bool          `bson:"citizen_confirmed" json:"citizen_confirmed"`
	ReportedAt       time.Time      `bson:"reported_at" json:"reported_at"`
	UpdatedAt        time.Time      `bson:"updated_at" json:"updated_at"`
	ResolvedAt       *time.Time     `bson:"resolved_at" json:"resolved_at"`
}

type IncidentHistory struct {
	IncidentID string         `bson:"incident_id" json:"incident_id"`
	Status     IncidentStatus `bson:"status" json:"status"`
	Note       string         `bson:"note" json:"note"`
	ActorID    string         `bson:"actor_id" json:"actor_id"`
	CreatedAt  time.Time      `bson:"created_at" json:"created_at"`
}

type IncidentMedia struct {
	IncidentID string    `bson:"incident_id" json:"incident_id"`
	URL        string    `bson:"url" json:"url"`
	MimeType   string    `bson:"mime_type" json:"mime_type"`
	Caption    string    `bson:"caption" json:"caption"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

type IncidentAssignment struct {
	IncidentID string    `bson:"incident_id" json:"incident_id"`
	AssignedTo string    `bson:"assigned_to" json:"assigned_to"`
	AssignedBy string    `bson:"assigned_by" json:"assigned_by"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

type VoteValue string

const (
	VoteValid   VoteValue = "valid"
	VoteInvalid VoteValue = "invalid"
)

// IncidentVote - один голос на пару (incident_id, user_id)
type IncidentVote struct {
	IncidentID string    `bson:"incident_id" json:"incident_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Vote       VoteValue `bson:"vote" json:"vote"`
	Reason     string    `bson:"reason" json:"reason"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
