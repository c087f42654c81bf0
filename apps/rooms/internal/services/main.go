package services

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"salledispo.app/apps/rooms/internal/feeds"
	"salledispo.app/apps/rooms/internal/repositories"
	"salledispo.app/internal/auth"
	"salledispo.app/internal/config"
)

type Services struct {
	Auth      auth.Service
	Rooms     *RoomService
	Reports   *ReportService
	WebSocket *WebSocketService
}

func New(
	logger *slog.Logger,
	cfg config.Config,
	jobQueue *threading.JobQueue,
	repositories *repositories.Repositories,
	store feeds.Store,
	loc *time.Location,
	now func() time.Time,
	authService auth.Service,
) *Services {
	reports := &ReportService{
		reports: repositories.Reports,
	}
	rooms := NewRoomService(
		logger,
		store,
		repositories,
		loc,
		cfg.HorizonDays,
		now,
	)

	return &Services{
		Auth:      authService,
		Rooms:     rooms,
		Reports:   reports,
		WebSocket: NewWebSocketService(logger, []string{cfg.WebURL}, jobQueue),
	}
}
