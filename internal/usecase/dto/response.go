package dto

import "encoding/json"

// Ack - подтверждение создания: {"message": "...", "<IDKey>": ID}
type Ack struct {
	Message string
	IDKey   string
	ID      interface{}
}

func (a Ack) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"message": a.Message,
		a.IDKey:   a.ID,
	})
}

// ImportReport - итог импорта из унаследованной базы по каждой коллекции
type ImportReport struct {
	Collections map[string]*ImportStats `json:"collections"`
}

type ImportStats struct {
	Read     int `json:"read"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// Dump - содержимое data/mongo_dump.json
type Dump struct {
	GeneratedAt string                     `json:"generatedAt"`
	Database    string                     `json:"database"`
	Collections map[string]*CollectionDump `json:"collections"`
}

type CollectionDump struct {
	Count     int64                    `json:"count"`
	Documents []map[string]interface{} `json:"documents"`
	Error     string                   `json:"error,omitempty"`
}

// UploadedImage - результат загрузки; url подходит для POST /incident-media
type UploadedImage struct {
	Message  string `json:"message"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int    `json:"size"`
	MimeType string `json:"mime_type"`
}
