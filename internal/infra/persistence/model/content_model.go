// Package model contains the GORM persistence models mirroring the database tables.
package model

import "time"

// BioModel mirrors the 'bios' table. The table only ever holds one row.
type BioModel struct {
	ID            uint    `gorm:"primaryKey"`
	ShortText     string  `gorm:"type:text;not null"`
	LongText      string  `gorm:"type:text;not null"`
	HeroImagePath *string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BioModel) TableName() string {
	return "bios"
}

// VisualModel mirrors the 'visuals' table.
type VisualModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	ImagePath   string  `gorm:"type:varchar(255);not null"`
	Order       int     `gorm:"column:order;not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (VisualModel) TableName() string {
	return "visuals"
}

// LiveSetModel mirrors the 'sets' table.
type LiveSetModel struct {
	ID          uint    `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
	EmbedURL    string  `gorm:"column:embed_url;type:varchar(512);not null"`
	Platform    string  `gorm:"type:varchar(16);not null;default:youtube"`
	Order       int     `gorm:"column:order;not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LiveSetModel) TableName() string {
	return "sets"
}

// CollaborationModel mirrors the 'collaborations' table.
type CollaborationModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Role      *string `gorm:"type:varchar(255)"`
	Year      *int
	Link      *string `gorm:"type:varchar(512)"`
	Order     int     `gorm:"column:order;not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CollaborationModel) TableName() string {
	return "collaborations"
}

// InfluenceModel mirrors the 'influences' table.
type InfluenceModel struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null"`
	Genre     *string `gorm:"type:varchar(255)"`
	Note      *string `gorm:"type:text"`
	Order     int     `gorm:"column:order;not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InfluenceModel) TableName() string {
	return "influences"
}

// ContactModel mirrors the 'contacts' table. The table only ever holds one row.
type ContactModel struct {
	ID              uint    `gorm:"primaryKey"`
	WhatsappNumber  string  `gorm:"type:varchar(32);not null"`
	WhatsappMessage *string `gorm:"type:varchar(512)"`
	Instagram       *string `gorm:"type:varchar(512)"`
	Spotify         *string `gorm:"type:varchar(512)"`
	Youtube         *string `gorm:"type:varchar(512)"`
	Soundcloud      *string `gorm:"type:varchar(512)"`
	Email           *string `gorm:"type:varchar(255)"`
	Location        *string `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
