package rooms_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xdoubleu/essentia/v2/pkg/test"
	"salledispo.app/apps/rooms"
	"salledispo.app/apps/rooms/internal/dtos"
	"salledispo.app/apps/rooms/internal/schedule"
	"salledispo.app/apps/rooms/internal/services"
)

func TestIndexHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/", testApp.GetName()),
	)

	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestIndexHandlerHalfWindow(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/?heure_debut=14:00", testApp.GetName()),
	)

	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusUnprocessableEntity, rs.StatusCode)
}

func TestDetailHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/salle/204", testApp.GetName()),
	)

	tReq.AddCookie(&accessToken)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func TestTVHandler(t *testing.T) {
	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/tv", testApp.GetName()),
	)

	rs := tReq.Do(t)
	assert.Equal(t, http.StatusOK, rs.StatusCode)
}

func availability(t *testing.T, query string) bool {
	t.Helper()

	tReq := test.CreateRequestTester(
		getRoutes(),
		http.MethodGet,
		fmt.Sprintf("/%s/api/salle/204/disponible%s", testApp.GetName(), query),
	)

	rs := tReq.Do(t)
	require.Equal(t, http.StatusOK, rs.StatusCode)

	body, err := io.ReadAll(rs.Body)
	require.NoError(t, err)

	var dto rooms.AvailabilityDto
	require.NoError(t, json.Unmarshal(body, &dto))
	assert.Equal(t, "204", dto.Room)

	return dto.Available
}

func TestAvailabilityHandler(t *testing.T) {
	// 14:00-15:30 is booked at testNow
	assert.False(t, availability(t, "?debut=14:00&fin=15:00"))

	// between the two courses, end boundary touching the next one
	assert.True(t, availability(t, "?debut=15:30&fin=16:00"))

	// duration query starting at testNow (14:45) collides with the course
	assert.False(t, availability(t, "?duree_min=30"))

	// no window given: defaults to the coming hour, which is busy
	assert.False(t, availability(t, ""))
}

func TestRoomServiceStatuses(t *testing.T) {
	ctx := context.Background()

	occupied := testApp.Services.Rooms.Status(ctx, "204")
	assert.Equal(t, schedule.StateOccupied, occupied.State)
	assert.Equal(t, "Analyse 2", occupied.Headline)
	assert.Equal(t, 50, occupied.Progress)

	empty := testApp.Services.Rooms.Status(ctx, "101")
	assert.Equal(t, schedule.StateFree, empty.State)
	assert.Equal(t, "Planning vide", empty.SubText)

	corrupt := testApp.Services.Rooms.Status(ctx, "305")
	assert.Equal(t, schedule.StateError, corrupt.State)
	assert.Equal(t, "Fichier corrompu", corrupt.SubText)

	missing := testApp.Services.Rooms.Status(ctx, "999")
	assert.Equal(t, schedule.StateError, missing.State)
	assert.Equal(t, "Introuvable", missing.SubText)
}

func TestFeedFailureIsConservative(t *testing.T) {
	ctx := context.Background()

	window := services.Window{
		Start: testNow,
		End:   testNow.Add(time.Hour),
	}

	assert.False(t, testApp.Services.Rooms.IsAvailable(ctx, "999", window))
	assert.False(t, testApp.Services.Rooms.IsAvailable(ctx, "305", window))

	assert.Empty(t, testApp.Services.Rooms.Itinerary(ctx, "999"))
}

func TestTVListFreeFirst(t *testing.T) {
	listings, err := testApp.Services.Rooms.TVList(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 3)

	assert.Equal(t, "101", listings[0].Name)
	assert.Equal(t, schedule.StateFree, listings[0].Status.State)
	assert.Equal(t, "204", listings[1].Name)
	assert.Equal(t, "305", listings[2].Name)
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()

	//nolint:exhaustruct //only the tested fields matter
	byQuery, err := testApp.Services.Rooms.List(ctx, dtos.RoomFilterDto{
		Query: "20",
	})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "204", byQuery[0].Name)

	//nolint:exhaustruct //only the tested fields matter
	byFloor, err := testApp.Services.Rooms.List(ctx, dtos.RoomFilterDto{
		Floor: "1",
	})
	require.NoError(t, err)
	require.Len(t, byFloor, 1)
	assert.Equal(t, "101", byFloor[0].Name)

	// a window filter drops the room that is busy over it
	//nolint:exhaustruct //only the tested fields matter
	byWindow, err := testApp.Services.Rooms.List(ctx, dtos.RoomFilterDto{
		StartTime: "14:00",
		EndTime:   "15:00",
	})
	require.NoError(t, err)
	for _, listing := range byWindow {
		assert.NotEqual(t, "204", listing.Name)
	}
}

func TestWindowFromFilterRollsOverMidnight(t *testing.T) {
	//nolint:exhaustruct //only the tested fields matter
	window := testApp.Services.Rooms.WindowFromFilter(dtos.RoomFilterDto{
		StartTime: "23:00",
		EndTime:   "01:00",
	})

	require.NotNil(t, window)
	assert.True(t, window.End.After(window.Start))
	assert.Equal(t, 2*time.Hour, window.End.Sub(window.Start))
}

func TestDetailAssemblesItineraryAndUtilization(t *testing.T) {
	detail, err := testApp.Services.Rooms.Detail(context.Background(), "204")
	require.NoError(t, err)

	assert.Equal(t, "204", detail.Name)
	assert.Equal(t, 2, detail.Floor)
	assert.Equal(t, "droite", string(detail.Wing))

	require.Len(t, detail.Itinerary, 2)
	assert.Equal(t, "Analyse 2", detail.Itinerary[0].Title)
	assert.Equal(t, "Lundi 10 mars", detail.Itinerary[0].DayLabel)

	// 1.5h + 1h booked out of 24h
	assert.Equal(t, 10, detail.Utilization)
}
