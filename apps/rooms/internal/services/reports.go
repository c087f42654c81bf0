package services

import (
	"context"

	"salledispo.app/apps/rooms/internal/models"
	"salledispo.app/apps/rooms/internal/repositories"
)

// ReportService handles incident reports filed against rooms.
type ReportService struct {
	reports *repositories.ReportRepository
}

// File records a new report. Author is the signed-in user's identifier or
// the public placeholder for anonymous TV reports.
func (service *ReportService) File(
	ctx context.Context,
	roomID string,
	problemType string,
	description string,
	author string,
) (*models.Report, error) {
	return service.reports.Create(ctx, roomID, problemType, description, author)
}

// ForRoom lists a room's reports, newest first.
func (service *ReportService) ForRoom(
	ctx context.Context,
	roomID string,
) ([]models.Report, error) {
	return service.reports.GetByRoom(ctx, roomID)
}
