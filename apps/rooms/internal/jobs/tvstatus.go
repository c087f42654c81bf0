package jobs

import (
	"context"
	"log/slog"
	"time"

	"salledispo.app/apps/rooms/internal/services"
)

// TVStatusJob periodically re-resolves every room's status and pushes the
// snapshot to subscribed TV screens.
type TVStatusJob struct {
	roomService      *services.RoomService
	webSocketService *services.WebSocketService
}

func NewTVStatusJob(
	roomService *services.RoomService,
	webSocketService *services.WebSocketService,
) TVStatusJob {
	return TVStatusJob{
		roomService:      roomService,
		webSocketService: webSocketService,
	}
}

func (j TVStatusJob) ID() string {
	return services.TVTopic
}

func (j TVStatusJob) RunEvery() time.Duration {
	return time.Minute
}

func (j TVStatusJob) Run(ctx context.Context, logger *slog.Logger) error {
	listings, err := j.roomService.TVList(ctx)
	if err != nil {
		return err
	}

	logger.Debug("pushing tv snapshot", slog.Int("rooms", len(listings)))
	j.webSocketService.PublishTV(listings)

	return nil
}
