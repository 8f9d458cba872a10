package dto

// LocationInput - GeoJSON точка во входящем запросе; type можно опустить.
// Элементы координат - указатели, чтобы null в массиве не превращался в 0
type LocationInput struct {
	Type        string     `json:"type" validate:"omitempty,eq=Point"`
	Coordinates []*float64 `json:"coordinates" validate:"required,len=2,dive,required"`
}

// NewPointLocation - точка из долготы и широты
func NewPointLocation(lon, lat float64) *LocationInput {
	return &LocationInput{Type: "Point", Coordinates: []*float64{&lon, &lat}}
}

// CreateUserRequest - POST /users. Идентификатор приходит из внешней системы
type CreateUserRequest struct {
	ID           string    `json:"id" validate:"required"`
	Name         string    `json:"name" validate:"required"`
	Phone        string    `json:"phone" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"password_hash" validate:"required"`
	Role         string    `json:"role" validate:"required,oneof=citizen operator admin"`
	IsActive     *bool     `json:"is_active"`
	CreatedAt    Timestamp `json:"created_at" validate:"required"`
}

// CreateAreaRequest - POST /areas
type CreateAreaRequest struct {
	ID        *int64         `json:"_id" validate:"required"`
	Name      string         `json:"name" validate:"required"`
	City      string         `json:"city" validate:"required"`
	Location  *LocationInput `json:"location" validate:"required"`
	CreatedAt Timestamp      `json:"created_at" validate:"required"`
}

// CreateUserAreaRequest - POST /user-areas
type CreateUserAreaRequest struct {
	UserID string `json:"user_id" validate:"required"`
	AreaID *int64 `json:"area_id" validate:"required"`
}

// CreateIncidentTypeRequest - POST /incident-types
type CreateIncidentTypeRequest struct {
	ID              *int64    `json:"_id" validate:"required"`
	Name            string    `json:"name" validate:"required"`
	DefaultPriority *int      `json:"default_priority" validate:"required"`
	TargetSLAHours  *int      `json:"target_sla_hours" validate:"required"`
	CreatedAt       Timestamp `json:"created_at" validate:"required"`
}

// CreateIncidentRequest - POST /incidents
type CreateIncidentRequest struct {
	ID               string         `json:"_id" validate:"required"`
	IncidentTypeID   *int64         `json:"incident_type_id" validate:"required"`
	Summary          string         `json:"summary" validate:"required"`
	Description      *string        `json:"description" validate:"required"`
	Status           string         `json:"status" validate:"required,oneof=sent processing resolved reopened"`
	Priority         *int           `json:"priority" validate:"required"`
	ReporterID       string         `json:"reporter_id" validate:"required"`
	AreaID           *int64         `json:"area_id" validate:"required"`
	LocationText     *string        `json:"location_text" validate:"required"`
	Location         *LocationInput `json:"location" validate:"required"`
	CitizenConfirmed *bool          `json:"citizen_confirmed"`
	ReportedAt       Timestamp      `json:"reported_at" validate:"required"`
	UpdatedAt        Timestamp      `json:"updated_at" validate:"required"`
	ResolvedAt       *Timestamp     `json:"resolved_at"`
}

// CreateIncidentHistoryRequest - POST /incident-history
type CreateIncidentHistoryRequest struct {
	IncidentID string    `json:"incident_id" validate:"required"`
	Status     string    `json:"status" validate:"required,oneof=sent processing resolved reopened"`
	Note       *string   `json:"note" validate:"required"`
	ActorID    string    `json:"actor_id" validate:"required"`
	CreatedAt  Timestamp `json:"created_at" validate:"required"`
}

// CreateIncidentMediaRequest - POST /incident-media
type CreateIncidentMediaRequest struct {
	IncidentID string    `json:"incident_id" validate:"required"`
	URL        string    `json:"url" validate:"required"`
	MimeType   string    `json:"mime_type" validate:"required"`
	Caption    *string   `json:"caption" validate:"required"`
	CreatedAt  Timestamp `json:"created_at" validate:"required"`
}

// CreateIncidentAssignmentRequest - POST /incident-assignments
type CreateIncidentAssignmentRequest struct {
	IncidentID string    `json:"incident_id" validate:"required"`
	AssignedTo string    `json:"assigned_to" validate:"required"`
	AssignedBy string    `json:"assigned_by" validate:"required"`
	CreatedAt  Timestamp `json:"created_at" validate:"required"`
}

// CreateIncidentVoteRequest - POST /incident-votes
type CreateIncidentVoteRequest struct {
	IncidentID string    `json:"incident_id" validate:"required"`
	UserID     string    `json:"user_id" validate:"required"`
	Vote       string    `json:"vote" validate:"required,oneof=valid invalid"`
	Reason     *string   `json:"reason" validate:"required"`
	CreatedAt  Timestamp `json:"created_at" validate:"required"`
}

// CreateAlertRequest - POST /alerts
type CreateAlertRequest struct {
	AlertType   string    `json:"alert_type" validate:"required"`
	Level       string    `json:"level" validate:"required,oneof=Low Medium High"`
	Description *string   `json:"description" validate:"required"`
	StartAt     Timestamp `json:"start_at" validate:"required"`
	EndAt       Timestamp `json:"end_at" validate:"required"`
	CreatedAt   Timestamp `json:"created_at" validate:"required"`
	UpdatedAt   Timestamp `json:"updated_at" validate:"required"`
}

// CreateSupportContactRequest - POST /support-contacts
type CreateSupportContactRequest struct {
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone" validate:"required"`
	Channel   string    `json:"channel" validate:"required"`
	CreatedAt Timestamp `json:"created_at" validate:"required"`
}

// UploadImageInput - файл из multipart-формы POST /uploads/images
type UploadImageInput struct {
	Filename string
	Data     []byte
}
