package models

// Employee represents a store employee profile
type Employee struct {
	BaseModel
	Name         string `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Registration string `json:"registration" gorm:"size:20;not null;uniqueIndex" validate:"required,min=1,max=20"`
	Role         Role   `json:"role" gorm:"type:varchar(20);not null;default:'assistente'" validate:"required"`
	BaseSector   string `json:"base_sector" gorm:"size:60"`
	Active       bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}
