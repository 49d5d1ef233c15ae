package entity

import "time"

// FileDocument es un archivo registrado en la colección files.
type FileDocument struct {
	ID          int64
	Name        string
	Client      PartyRef
	Date        time.Time
	Description string
	Type        string
	Size        string
	URL         string
}
