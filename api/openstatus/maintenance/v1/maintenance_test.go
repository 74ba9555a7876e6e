package maintenancev1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMaintenance_Active(t *testing.T) {
	from := time.Date(2026, 5, 1, 22, 0, 0, 0, time.UTC)
	to := from.Add(2 * time.Hour)
	m := &Maintenance{From: &from, To: &to}

	assert.False(t, m.Active(from.Add(-time.Minute)))
	assert.True(t, m.Active(from))
	assert.True(t, m.Active(from.Add(time.Hour)))
	assert.False(t, m.Active(to))

	assert.False(t, (&Maintenance{From: &from}).Active(from))
	assert.False(t, (*Maintenance)(nil).Active(from))
}
