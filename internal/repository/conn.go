package repository

import "gorm.io/gorm"

// Conn yields the gorm handle backing the current data source. Repositories
// resolve it per call, so a data-source mode switch takes effect on the next
// query.
type Conn interface {
	DB() *gorm.DB
}
