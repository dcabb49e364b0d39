package models

// Account is the shared record shape for all three rosters. The roster a
// record belongs to is determined by the table it is stored in (users,
// swat_members, ia_agents), never by a column. Tier is only meaningful in
// the directory roster; specialized rosters authorize on Rank instead.
type Account struct {
	ID        string `gorm:"primarykey;column:id" json:"id"`
	Username  string `gorm:"column:username;not null;uniqueIndex" json:"username"`
	DiscordID string `gorm:"column:discord_id;not null;uniqueIndex" json:"discordId"`
	Rank      string `gorm:"column:rank;not null" json:"rank"`
	Status    string `gorm:"column:status;not null" json:"status"`
	SteamID   string `gorm:"column:steam_id" json:"steamId"`
	Strikes   int    `gorm:"column:strikes;not null;default:0" json:"strikes"`
	Division  string `gorm:"column:division;not null" json:"division"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatarUrl"`
	Tier      string `gorm:"column:tier" json:"tier"`
	BaseModel
}

// DirectoryStats summarizes the directory roster for the home page
type DirectoryStats struct {
	TotalAccounts  int64 `json:"totalAccounts"`
	ActiveAccounts int64 `json:"activeAccounts"`
	TotalDivisions int64 `json:"totalDivisions"`
}
