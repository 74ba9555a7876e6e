package statusreportv1

import (
	"testing"
	"time"

	"github.com/openstatushq/openstatus-go/codecx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusReport_Latest(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	report := &StatusReport{Updates: []*StatusReportUpdate{
		{ID: "a", Date: &t2, Status: StatusReportStatusMonitoring},
		{ID: "b"},
		nil,
		{ID: "c", Date: &t1, Status: StatusReportStatusInvestigating},
	}}

	latest := report.Latest()
	require.NotNil(t, latest)
	assert.Equal(t, "a", latest.ID)

	assert.Nil(t, (*StatusReport)(nil).Latest())
	assert.Nil(t, (&StatusReport{}).Latest())
}

func TestAddStatusReportUpdateRequest_JSON(t *testing.T) {
	date := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	notify := true
	data, err := codecx.JSON.Marshal(&AddStatusReportUpdateRequest{
		StatusReportID: "12",
		Status:         StatusReportStatusResolved,
		Message:        "All systems operational",
		Date:           &date,
		Notify:         &notify,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"statusReportId": "12",
		"status": "STATUS_REPORT_STATUS_RESOLVED",
		"message": "All systems operational",
		"date": "2026-03-01T10:00:00Z",
		"notify": true
	}`, string(data))
}
