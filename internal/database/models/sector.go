package models

// Sector represents a store sector (reference data, soft-deactivated rather than deleted)
type Sector struct {
	BaseModel
	Name   string `json:"name" gorm:"size:60;not null;uniqueIndex" validate:"required,min=1,max=60"`
	Color  string `json:"color" gorm:"size:9;not null;default:'#888888'" validate:"required,max=9"`
	Active bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Sector
func (Sector) TableName() string {
	return "sectors"
}
