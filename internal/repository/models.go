package repository

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"size:64;not null"` // hex encoded 256-bit digest
	Role         string `gorm:"size:16;not null;default:user"`
}

type Project struct {
	ID               uint   `gorm:"primaryKey"`
	OwnerID          uint   `gorm:"not null;index"`
	Name             string `gorm:"not null"`
	Type             string
	StartDate        string `gorm:"size:16"` // dd.mm.yyyy, stored as typed in
	EndDate          string `gorm:"size:16"`
	Completed        bool   `gorm:"not null;default:false"`
	AttachedFilePath string
}
