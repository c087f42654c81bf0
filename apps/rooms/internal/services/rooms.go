package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"salledispo.app/apps/rooms/internal/dtos"
	"salledispo.app/apps/rooms/internal/feeds"
	"salledispo.app/apps/rooms/internal/models"
	"salledispo.app/apps/rooms/internal/repositories"
	"salledispo.app/apps/rooms/internal/schedule"
)

// RoomService answers every room-level question of the application. It
// holds no per-room state: each call re-reads the feed, so the answer
// always reflects the latest export.
type RoomService struct {
	logger      *slog.Logger
	store       feeds.Store
	roomInfo    *repositories.RoomInfoRepository
	reports     *repositories.ReportRepository
	loc         *time.Location
	horizonDays int
	now         func() time.Time
}

func NewRoomService(
	logger *slog.Logger,
	store feeds.Store,
	repos *repositories.Repositories,
	loc *time.Location,
	horizonDays int,
	now func() time.Time,
) *RoomService {
	return &RoomService{
		logger:      logger,
		store:       store,
		roomInfo:    repos.RoomInfo,
		reports:     repos.Reports,
		loc:         loc,
		horizonDays: horizonDays,
		now:         now,
	}
}

// RoomListing is one dashboard/TV tile.
type RoomListing struct {
	Name     string
	Status   schedule.Status
	Info     models.RoomInfo
	Floor    int
	Wing     models.Wing
	HasIssue bool
}

// RoomDetail backs the room detail page.
type RoomDetail struct {
	Name        string
	Status      schedule.Status
	Info        models.RoomInfo
	Floor       int
	Wing        models.Wing
	Itinerary   []schedule.Entry
	Utilization int
	HourlyLoad  [24]float64
}

// Window is an ad-hoc availability query window, already in the reference
// timezone, Start < End.
type Window struct {
	Start time.Time
	End   time.Time
}

// Now is the current instant in the reference timezone.
func (service *RoomService) Now() time.Time {
	return service.now().In(service.loc)
}

func (service *RoomService) intervals(
	ctx context.Context,
	roomID string,
) ([]schedule.Interval, error) {
	feed, err := service.store.Open(ctx, roomID)
	if err != nil {
		return nil, err
	}
	defer feed.Close()

	return schedule.Parse(feed, service.loc)
}

// Status resolves the live occupancy of one room. Feed failures surface as
// the ERROR state instead of propagating.
func (service *RoomService) Status(
	ctx context.Context,
	roomID string,
) schedule.Status {
	intervals, err := service.intervals(ctx, roomID)
	if err != nil {
		service.logger.Warn(
			"failed to read feed",
			slog.String("room", roomID),
			logging.ErrAttr(err),
		)

		return schedule.ErrorStatus(errors.Is(err, feeds.ErrNotFound))
	}

	return schedule.Resolve(intervals, service.Now())
}

// Itinerary lists the room's events over the configured horizon. A feed
// failure yields an empty itinerary; Status is the authority on reporting
// the failure itself.
func (service *RoomService) Itinerary(
	ctx context.Context,
	roomID string,
) []schedule.Entry {
	intervals, err := service.intervals(ctx, roomID)
	if err != nil {
		return []schedule.Entry{}
	}

	return schedule.Extract(intervals, service.Now(), service.horizonDays)
}

// IsAvailable reports whether the room is free over the window. Unknown is
// unavailable: any feed failure returns false.
func (service *RoomService) IsAvailable(
	ctx context.Context,
	roomID string,
	window Window,
) bool {
	intervals, err := service.intervals(ctx, roomID)
	if err != nil {
		return false
	}

	return schedule.Available(intervals, window.Start, window.End)
}

// List returns the filtered dashboard listing, alphabetically sorted.
func (service *RoomService) List(
	ctx context.Context,
	filter dtos.RoomFilterDto,
) ([]RoomListing, error) {
	rooms, err := service.store.List(ctx)
	if err != nil {
		return nil, err
	}

	infos, err := service.roomInfo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	reportCounts, err := service.reports.CountsByRoom(ctx)
	if err != nil {
		return nil, err
	}

	window := service.WindowFromFilter(filter)

	listings := []RoomListing{}
	for _, room := range rooms {
		info, ok := infos[room]
		if !ok {
			info = models.DefaultRoomInfo(room)
		}

		floor, wing := models.Locate(room, info)

		if !matchesFilter(room, info, floor, wing, filter) {
			continue
		}

		if window != nil && !service.IsAvailable(ctx, room, *window) {
			continue
		}

		listings = append(listings, RoomListing{
			Name:     room,
			Status:   service.Status(ctx, room),
			Info:     info,
			Floor:    floor,
			Wing:     wing,
			HasIssue: reportCounts[room] > 0,
		})
	}

	sort.Slice(listings, func(i, j int) bool {
		return listings[i].Name < listings[j].Name
	})

	return listings, nil
}

// TVList is the kiosk listing: free rooms first, then alphabetical, so a
// passing reader finds a free room without scanning the whole screen.
func (service *RoomService) TVList(ctx context.Context) ([]RoomListing, error) {
	//nolint:exhaustruct //an empty filter keeps every room
	listings, err := service.List(ctx, dtos.RoomFilterDto{})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(listings, func(i, j int) bool {
		iFree := listings[i].Status.State == schedule.StateFree
		jFree := listings[j].Status.State == schedule.StateFree

		if iFree != jFree {
			return iFree
		}

		return listings[i].Name < listings[j].Name
	})

	return listings, nil
}

// Detail assembles everything the room detail page shows.
func (service *RoomService) Detail(
	ctx context.Context,
	roomID string,
) (*RoomDetail, error) {
	info, err := service.roomInfo.GetByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}

	floor, wing := models.Locate(roomID, info)

	detail := &RoomDetail{
		Name:        roomID,
		Status:      service.Status(ctx, roomID),
		Info:        info,
		Floor:       floor,
		Wing:        wing,
		Itinerary:   service.Itinerary(ctx, roomID),
		Utilization: 0,
		HourlyLoad:  [24]float64{},
	}

	if intervals, feedErr := service.intervals(ctx, roomID); feedErr == nil {
		timeline := schedule.NewDayTimeline(intervals, service.Now())
		detail.Utilization = timeline.UtilizationPercent()
		detail.HourlyLoad = timeline.HourlyLoad()
	}

	return detail, nil
}

// WindowFromFilter turns the form's time filters into a concrete window in
// the reference timezone, or nil when no time filter applies. An explicit
// start/end pair wins over a duration; an end before the start rolls over
// to the next day.
func (service *RoomService) WindowFromFilter(
	filter dtos.RoomFilterDto,
) *Window {
	now := service.Now()

	if filter.StartTime != "" && filter.EndTime != "" {
		start, okStart := timeOfDay(now, filter.StartTime)
		end, okEnd := timeOfDay(now, filter.EndTime)

		if !okStart || !okEnd {
			return nil
		}

		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}

		return &Window{Start: start, End: end}
	}

	if filter.Duration != "" {
		minutes, err := strconv.Atoi(filter.Duration)
		if err != nil || minutes <= 0 {
			return nil
		}

		return &Window{
			Start: now,
			End:   now.Add(time.Duration(minutes) * time.Minute),
		}
	}

	return nil
}

func matchesFilter(
	room string,
	info models.RoomInfo,
	floor int,
	wing models.Wing,
	filter dtos.RoomFilterDto,
) bool {
	if filter.Query != "" &&
		!strings.Contains(
			strings.ToLower(room),
			strings.ToLower(filter.Query),
		) {
		return false
	}

	if filter.PC && !info.PC {
		return false
	}

	if filter.Projector && !info.Projector {
		return false
	}

	if filter.Floor != "" && filter.Floor != strconv.Itoa(floor) {
		return false
	}

	if filter.Wing != "" && filter.Wing != string(wing) {
		return false
	}

	return true
}

// timeOfDay anchors an "HH:MM" form value on day's civil date.
func timeOfDay(day time.Time, value string) (time.Time, bool) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(
		day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		day.Location(),
	), true
}
