package domain

import "time"

type MarinaGroup struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Code      string    `json:"code" validate:"required" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Marinas []Marina `json:"marinas,omitempty" gorm:"foreignKey:GroupID"`
}
