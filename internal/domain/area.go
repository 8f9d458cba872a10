package domain

import "time"

// Area - район, _id целочисленный (бывший SERIAL)
type Area struct {
	ID        int64     `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	City      string    `bson:"city" json:"city"`
	Location  GeoPoint  `bson:"location" json:"location"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
