package models

// CadetEntry tracks training activity for members still in probation.
// It is keyed by the Discord ID rather than the account's own ID so the
// entry survives account deletion and can be looked up straight from the
// session principal.
type CadetEntry struct {
	DiscordID  string `gorm:"primarykey;column:discord_id" json:"discordId"`
	Arrests    int    `gorm:"column:arrests;not null;default:0" json:"arrests"`
	RideAlongs int    `gorm:"column:ride_alongs;not null;default:0" json:"rideAlongs"`
	Warrants   int    `gorm:"column:warrants;not null;default:0" json:"warrants"`
	Fines      int    `gorm:"column:fines;not null;default:0" json:"fines"`
	Heists     int    `gorm:"column:heists;not null;default:0" json:"heists"`
	BaseModel
}

// TableName sets the table name for GORM
func (CadetEntry) TableName() string {
	return "cadet_entries"
}

// CadetRecord is a CadetEntry joined with the owning account's username for
// the admin listing. Username is "Unknown" when the account no longer exists.
type CadetRecord struct {
	CadetEntry
	Username string `json:"username"`
}
