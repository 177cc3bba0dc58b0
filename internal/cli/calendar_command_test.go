package cli

import (
	"strings"
	"testing"
	"time"

	"momentum/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCalendar_MarksDaysWithTasks(t *testing.T) {
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	groups := map[string][]domain.Task{
		"2024-03-01": {{ID: uuid.New(), Name: "one"}},
		"2024-03-15": {{ID: uuid.New(), Name: "two"}},
		// A different month never shows up in this grid
		"2024-04-01": {{ID: uuid.New(), Name: "elsewhere"}},
	}

	out := renderCalendar(month, groups)

	assert.Contains(t, out, "March 2024")
	assert.Contains(t, out, "Su Mo Tu We Th Fr Sa")
	assert.Contains(t, out, " 1*")
	assert.Contains(t, out, "15*")
	assert.NotContains(t, out, " 2*")
}

func TestRenderCalendar_GridShape(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days.
	month := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)

	out := renderCalendar(month, nil)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Title, weekday header, and six week rows.
	require.Len(t, lines, 8)

	firstWeek := lines[2]
	assert.True(t, strings.HasPrefix(firstWeek, strings.Repeat("   ", 5)), "five leading blank cells before Friday the 1st")
	assert.Contains(t, firstWeek, " 1")
	assert.Contains(t, lines[7], "31")
}

func TestRenderCalendar_AllDaysPresent(t *testing.T) {
	// February 2024 is a leap month.
	month := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)

	out := renderCalendar(month, nil)

	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, "29")
	assert.NotContains(t, out, "30")
}
