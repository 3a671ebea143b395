package domain

import "time"

type Marina struct {
	ID         int64      `json:"id"`
	GroupID    *int64     `json:"group_id,omitempty"`
	Name       string     `json:"name" validate:"required"`
	Code       string     `json:"code" validate:"required" gorm:"uniqueIndex"`
	City       string     `json:"city,omitempty"`
	IsActive   bool       `json:"is_active"`
	IsOnline   bool       `json:"is_online"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Berths     []Berth     `json:"berths,omitempty" gorm:"foreignKey:MarinaID"`
	Boats      []Boat      `json:"boats,omitempty" gorm:"foreignKey:MarinaID"`
	Owners     []Owner     `json:"owners,omitempty" gorm:"foreignKey:MarinaID"`
	Users      []User      `json:"users,omitempty" gorm:"foreignKey:MarinaID"`
	Contracts  []Contract  `json:"contracts,omitempty" gorm:"foreignKey:MarinaID"`
	Bookings   []Booking   `json:"bookings,omitempty" gorm:"foreignKey:MarinaID"`
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:MarinaID"`
	Invoices   []Invoice   `json:"invoices,omitempty" gorm:"foreignKey:MarinaID"`
	Payments   []Payment   `json:"payments,omitempty" gorm:"foreignKey:MarinaID"`
}
