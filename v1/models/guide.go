package models

// Guide is a freeform informational document. Guides are write-once: there
// is no edit or delete surface and the author never changes.
type Guide struct {
	ID        string `gorm:"primarykey;column:id" json:"id"`
	Title     string `gorm:"column:title;not null" json:"title"`
	Content   string `gorm:"column:content;not null" json:"content"`
	IsPublic  bool   `gorm:"column:is_public;not null;default:false" json:"isPublic"`
	CreatedBy string `gorm:"column:created_by" json:"createdBy"`
	BaseModel
}

// TableName sets the table name for GORM
func (Guide) TableName() string {
	return "guides"
}

// VisibleTo reports whether the guide may be read by a caller. Private
// guides are visible to any authenticated member regardless of tier.
func (g Guide) VisibleTo(authenticated bool) bool {
	return g.IsPublic || authenticated
}
