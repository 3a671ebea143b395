package database

import (
	"marinahub/internal/datasource"

	"gorm.io/gorm"
)

// Selector picks the store backing the current data-source mode. Both
// handles stay open for the process lifetime; repositories calling DB see
// the switch on their next query.
type Selector struct {
	live     *gorm.DB
	demo     *gorm.DB
	settings *datasource.Settings
}

func NewSelector(live, demo *gorm.DB, settings *datasource.Settings) *Selector {
	return &Selector{live: live, demo: demo, settings: settings}
}

func (s *Selector) DB() *gorm.DB {
	if s.settings.Mode() == datasource.ModeDemo {
		return s.demo
	}
	return s.live
}
