package database

import (
	"testing"

	"marinahub/internal/datasource"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSelector_FollowsModeSwitch(t *testing.T) {
	live := &gorm.DB{}
	demo := &gorm.DB{}
	settings := datasource.NewSettings(datasource.ModeDatabase)

	sel := NewSelector(live, demo, settings)

	assert.Same(t, live, sel.DB())

	settings.SetMode(datasource.ModeDemo)
	assert.Same(t, demo, sel.DB())

	settings.SetMode(datasource.ModeDatabase)
	assert.Same(t, live, sel.DB())
}
