package models

// CreateAccountRequest enumerates the fields an administrative create
// accepts. Zero values fall back to the roster's schema defaults.
type CreateAccountRequest struct {
	Username  string `json:"username"`
	DiscordID string `json:"discordId"`
	Rank      string `json:"rank"`
	Status    string `json:"status"`
	SteamID   string `json:"steamId"`
	Strikes   int    `json:"strikes"`
	Division  string `json:"division"`
	Tier      string `json:"tier"`
}

// UpdateAccountRequest carries a partial update. Nil means the field is
// left untouched; a pointer to the empty string is a real overwrite.
type UpdateAccountRequest struct {
	Username  *string `json:"username,omitempty"`
	DiscordID *string `json:"discordId,omitempty"`
	Rank      *string `json:"rank,omitempty"`
	Status    *string `json:"status,omitempty"`
	SteamID   *string `json:"steamId,omitempty"`
	Strikes   *int    `json:"strikes,omitempty"`
	Division  *string `json:"division,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
	Tier      *string `json:"tier,omitempty"`
}

// UpdateCadetRequest carries a partial update of the training counters
type UpdateCadetRequest struct {
	Arrests    *int `json:"arrests,omitempty"`
	RideAlongs *int `json:"rideAlongs,omitempty"`
	Warrants   *int `json:"warrants,omitempty"`
	Fines      *int `json:"fines,omitempty"`
	Heists     *int `json:"heists,omitempty"`
}

// CreateGuideRequest carries a new guide. CreatedBy is taken from the
// session principal, never from the request body.
type CreateGuideRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic bool   `json:"isPublic"`
}
