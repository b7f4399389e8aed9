package models

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"not null"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:Category"`
}
