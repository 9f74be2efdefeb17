package models

// Crew is a named installation team scoped to a location. Rows are seeded
// from the default roster on first boot and change rarely.
type Crew struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"column:name;uniqueIndex;not null" json:"name"`
	Location     string `gorm:"column:location;not null" json:"location"`
	Roofers      int    `gorm:"column:roofers;not null;default:0" json:"roofers"`
	Electricians int    `gorm:"column:electricians;not null;default:0" json:"electricians"`
	Color        string `gorm:"column:color" json:"color"` // #RRGGBB, display only
	Active       int    `gorm:"column:active;not null;default:1" json:"active"`
}

func (Crew) TableName() string {
	return "crews"
}
