package services

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	wstools "github.com/xdoubleu/essentia/v2/pkg/communication/wstools"
	"github.com/xdoubleu/essentia/v2/pkg/threading"
	"salledispo.app/apps/rooms/internal/dtos"
)

// TVTopic is the subject TV screens subscribe to.
const TVTopic = "tv"

// WebSocketService pushes status snapshots to the TV screens so they
// update without reloading.
type WebSocketService struct {
	allowedOrigins []string
	handler        *wstools.WebSocketHandler[dtos.SubscribeMessageDto]
	jobQueue       *threading.JobQueue
	topics         map[string]*wstools.Topic

	mu       sync.RWMutex
	snapshot dtos.TVStateDto
}

func NewWebSocketService(
	logger *slog.Logger,
	allowedOrigins []string,
	jobQueue *threading.JobQueue,
) *WebSocketService {
	//nolint:exhaustruct //handler is assigned right below
	service := WebSocketService{
		allowedOrigins: allowedOrigins,
		handler:        nil,
		jobQueue:       jobQueue,
		topics:         make(map[string]*wstools.Topic),
	}

	handler := wstools.CreateWebSocketHandler[dtos.SubscribeMessageDto](
		logger,
		1,
		100, //nolint:mnd //no magic number
	)

	service.handler = &handler

	return &service
}

func (service *WebSocketService) Handler() http.HandlerFunc {
	return service.handler.Handler()
}

// PublishTV stores and broadcasts a fresh TV snapshot.
func (service *WebSocketService) PublishTV(rooms []RoomListing) {
	snapshot := dtos.TVStateDto{
		RefreshedAt: time.Now(),
		Rooms:       make([]dtos.TVRoomDto, 0, len(rooms)),
	}

	for _, room := range rooms {
		snapshot.Rooms = append(snapshot.Rooms, dtos.TVRoomDto{
			Name:     room.Name,
			State:    string(room.Status.State),
			Color:    room.Status.Color,
			Headline: room.Status.Headline,
			SubText:  room.Status.SubText,
			Progress: room.Status.Progress,
		})
	}

	service.mu.Lock()
	service.snapshot = snapshot
	service.mu.Unlock()

	topic, ok := service.topics[TVTopic]
	if !ok {
		return
	}

	topic.EnqueueEvent(snapshot)
}

// UpdateState is the job queue's state callback; screens only care about
// data snapshots, so refresh-state changes are not broadcast.
func (service *WebSocketService) UpdateState(
	_ string,
	_ bool,
	_ *time.Time,
) {
}

func (service *WebSocketService) RegisterTopics(topics []string) {
	for _, topic := range topics {
		registeredTopic, err := service.handler.AddTopic(
			topic,
			service.allowedOrigins,
			func(_ context.Context, _ *wstools.Topic) (any, error) {
				return service.currentSnapshot(), nil
			},
		)
		if err != nil {
			panic(err)
		}
		service.topics[topic] = registeredTopic
	}
}

func (service *WebSocketService) currentSnapshot() dtos.TVStateDto {
	service.mu.RLock()
	defer service.mu.RUnlock()

	return service.snapshot
}
