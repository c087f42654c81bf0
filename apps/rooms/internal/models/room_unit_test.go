package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"salledispo.app/apps/rooms/internal/models"
)

func TestLocate(t *testing.T) {
	cases := []struct {
		roomID string
		floor  int
		wing   models.Wing
	}{
		{"204", 2, models.WingRight},
		{"101", 1, models.WingLeft},
		{"A1", 0, models.WingLeft},
		{"B20", 0, models.WingRight},
		{"Amphi", 0, models.WingCenter},
	}

	for _, c := range cases {
		floor, wing := models.Locate(c.roomID, models.DefaultRoomInfo(c.roomID))
		assert.Equal(t, c.floor, floor, c.roomID)
		assert.Equal(t, c.wing, wing, c.roomID)
	}
}

func TestLocateOverrides(t *testing.T) {
	floorOverride := 5
	wingOverride := models.WingCenter

	info := models.DefaultRoomInfo("204")
	info.Floor = &floorOverride
	info.Wing = &wingOverride

	floor, wing := models.Locate("204", info)

	assert.Equal(t, 5, floor)
	assert.Equal(t, models.WingCenter, wing)
}

func TestDefaultRoomInfo(t *testing.T) {
	info := models.DefaultRoomInfo("204")

	assert.Equal(t, "Salle 204", info.FullName)
	assert.Equal(t, "?", info.Capacity)
	assert.Equal(t, "Pas d'info.", info.Description)
	assert.False(t, info.PC)
	assert.False(t, info.Projector)
}

func TestReportDateLabel(t *testing.T) {
	report := models.Report{
		ID:          "1",
		RoomID:      "204",
		ProblemType: "materiel",
		Description: "Vidéoprojecteur HS",
		Author:      "Public/TV",
		CreatedAt:   time.Date(2025, 3, 10, 15, 4, 0, 0, time.UTC),
	}

	assert.Equal(t, "10/03 à 15:04", report.DateLabel())
}
