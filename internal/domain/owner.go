package domain

import "time"

// Owner is the customer record: the boat owner a marina bills and berths.
type Owner struct {
	ID        int64     `json:"id"`
	MarinaID  int64     `json:"marina_id" validate:"required"`
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	Phone     string    `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Boats      []Boat      `json:"boats,omitempty" gorm:"foreignKey:OwnerID"`
	Contracts  []Contract  `json:"contracts,omitempty" gorm:"foreignKey:OwnerID"`
	Invoices   []Invoice   `json:"invoices,omitempty" gorm:"foreignKey:OwnerID"`
	Payments   []Payment   `json:"payments,omitempty" gorm:"foreignKey:OwnerID"`
	WorkOrders []WorkOrder `json:"work_orders,omitempty" gorm:"foreignKey:OwnerID"`
	Bookings   []Booking   `json:"bookings,omitempty" gorm:"foreignKey:OwnerID"`
}
