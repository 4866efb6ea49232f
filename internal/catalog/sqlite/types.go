package sqlite

// restaurantRow is the restaurants table.
type restaurantRow struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"type:text;not null"`
	Cuisine string `gorm:"type:text;index"`
	Budget  string `gorm:"type:text;index"`
	Zone    string `gorm:"type:text"`
}

func (restaurantRow) TableName() string { return "restaurants" }

// activityRow is the activities table.
type activityRow struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"type:text;not null"`
	GroupType   string `gorm:"type:text;index"`
	Zone        string `gorm:"type:text"`
	Description string `gorm:"type:text"`
}

func (activityRow) TableName() string { return "activities" }

// propertyRow is the apartments table; facts are stored as JSON text.
type propertyRow struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:text;not null;uniqueIndex"`
	Facilities string `gorm:"type:text"` // JSON object: facility -> description
	Rules      string `gorm:"type:text"` // JSON array
	Penalties  string `gorm:"type:text"` // JSON array
}

func (propertyRow) TableName() string { return "apartments" }
