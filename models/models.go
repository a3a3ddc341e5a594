package models

// Show is one catalog entry at rest. Genres are stored as a single
// comma-separated string; the catalog loader splits them back into the
// ordered tag list.
type Show struct {
	ID          uint `gorm:"primarykey"`
	Title       string
	Cover       string
	Description string
	Genres      string
	Popularity  float64
	UpdatedOn   string // ISO date from the source data, parsed at load
	Seasons     []Season
}

// Season is one season row belonging to a Show. Position preserves the
// source ordering; Description may be empty.
type Season struct {
	ID          uint `gorm:"primarykey"`
	ShowID      uint
	Position    int
	Title       string
	Description string
	Episodes    int
}
