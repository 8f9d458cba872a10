package domain

import (
	"database/sql"
	"time"
)

// Строки унаследованной реляционной базы, из которой пришли UUID и SERIAL идентификаторы

type LegacyUser struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Phone        string    `db:"phone"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type LegacyArea struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	City      string    `db:"city"`
	Lon       float64   `db:"lon"`
	Lat       float64   `db:"lat"`
	CreatedAt time.Time `db:"created_at"`
}

type LegacyUserArea struct {
	UserID string `db:"user_id"`
	AreaID int64  `db:"area_id"`
}

type LegacyIncidentType struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	DefaultPriority int       `db:"default_priority"`
	TargetSLAHours  int       `db:"target_sla_hours"`
	CreatedAt       time.Time `db:"created_at"`
}

type LegacyIncident struct {
	ID               string       `db:"id"`
	IncidentTypeID   int64        `db:"incident_type_id"`
	Summary          string       `db:"summary"`
	Description      string       `db:"description"`
	Status           string       `db:"status"`
	Priority         int          `db:"priority"`
	ReporterID       string       `db:"reporter_id"`
	AreaID           int64        `db:"area_id"`
	LocationText     string       `db:"location_text"`
	Lon              float64      `db:"lon"`
	Lat              float64      `db:"lat"`
	CitizenConfirmed sql.NullBool `db:"citizen_confirmed"`
	ReportedAt       time.Time    `db:"reported_at"`
	UpdatedAt        time.Time    `db:"updated_at"`
	ResolvedAt       sql.NullTime `db:"resolved_at"`
}
