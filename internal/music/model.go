package music

import (
	"time"
)

// Music is a catalog entry. RegisteredBy/UserID snapshot the authenticated
// creator at insert time and are carried forward unchanged on update, as is
// DateCreated.
type Music struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:128;not null" json:"title"`
	Artiste      string    `gorm:"size:128;not null" json:"artiste"`
	Category     string    `gorm:"size:64;not null" json:"category"`
	LinkYT       string    `gorm:"column:link_yt;size:256" json:"link_yt"`
	LinkCifra    string    `gorm:"column:link_cifra;size:256" json:"link_cifra"`
	RegisteredBy string    `gorm:"column:registered_by;size:64" json:"registered_by"`
	UserID       string    `gorm:"column:user_id;size:36" json:"user_id"`
	DateCreated  time.Time `gorm:"column:date_created" json:"date_created"`
}
