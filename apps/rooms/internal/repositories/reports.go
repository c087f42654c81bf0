package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"salledispo.app/apps/rooms/internal/models"
)

type ReportRepository struct {
	db postgres.DB
}

func (repo *ReportRepository) GetByRoom(
	ctx context.Context,
	roomID string,
) ([]models.Report, error) {
	query := `
		SELECT id, room_id, problem_type, description, author, created_at
		FROM rooms.reports
		WHERE room_id = $1
		ORDER BY created_at DESC
	`

	rows, err := repo.db.Query(ctx, query, roomID)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var report models.Report

		err = rows.Scan(
			&report.ID,
			&report.RoomID,
			&report.ProblemType,
			&report.Description,
			&report.Author,
			&report.CreatedAt,
		)

		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return reports, nil
}

// CountsByRoom returns the number of reports per room, for the dashboard's
// incident markers. Rooms without reports are absent from the map.
func (repo *ReportRepository) CountsByRoom(
	ctx context.Context,
) (map[string]int, error) {
	query := `
		SELECT room_id, count(*)
		FROM rooms.reports
		GROUP BY room_id
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var roomID string
		var count int

		if err = rows.Scan(&roomID, &count); err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		counts[roomID] = count
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return counts, nil
}

func (repo *ReportRepository) Create(
	ctx context.Context,
	roomID string,
	problemType string,
	description string,
	author string,
) (*models.Report, error) {
	query := `
		INSERT INTO rooms.reports (id, room_id, problem_type, description, author)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	//nolint:exhaustruct //CreatedAt is assigned by the query
	report := models.Report{
		ID:          uuid.New().String(),
		RoomID:      roomID,
		ProblemType: problemType,
		Description: description,
		Author:      author,
	}

	err := repo.db.QueryRow(
		ctx,
		query,
		report.ID,
		report.RoomID,
		report.ProblemType,
		report.Description,
		report.Author,
	).Scan(&report.CreatedAt)

	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return &report, nil
}

func (repo *ReportRepository) DeleteByRoom(
	ctx context.Context,
	roomID string,
) error {
	query := `
		DELETE FROM rooms.reports
		WHERE room_id = $1
	`

	_, err := repo.db.Exec(ctx, query, roomID)
	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}
