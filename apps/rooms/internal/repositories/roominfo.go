package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"salledispo.app/apps/rooms/internal/models"
)

type RoomInfoRepository struct {
	db postgres.DB
}

// GetByRoom returns the curated metadata of one room, falling back to
// defaults when no row exists. Absence is not an error.
func (repo *RoomInfoRepository) GetByRoom(
	ctx context.Context,
	roomID string,
) (models.RoomInfo, error) {
	query := `
		SELECT full_name, capacity, has_pc, has_projector, description, floor, wing
		FROM rooms.room_info
		WHERE room_id = $1
	`

	info, err := scanRoomInfo(repo.db.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.DefaultRoomInfo(roomID), nil
		}

		return models.RoomInfo{}, postgres.PgxErrorToHTTPError(err)
	}

	return info, nil
}

func (repo *RoomInfoRepository) GetAll(
	ctx context.Context,
) (map[string]models.RoomInfo, error) {
	query := `
		SELECT room_id, full_name, capacity, has_pc, has_projector,
			description, floor, wing
		FROM rooms.room_info
	`

	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}
	defer rows.Close()

	infos := map[string]models.RoomInfo{}
	for rows.Next() {
		var roomID string
		var info models.RoomInfo
		var wing *string

		err = rows.Scan(
			&roomID,
			&info.FullName,
			&info.Capacity,
			&info.PC,
			&info.Projector,
			&info.Description,
			&info.Floor,
			&wing,
		)

		if err != nil {
			return nil, postgres.PgxErrorToHTTPError(err)
		}

		info.Wing = wingFromColumn(wing)
		infos[roomID] = info
	}

	if err = rows.Err(); err != nil {
		return nil, postgres.PgxErrorToHTTPError(err)
	}

	return infos, nil
}

func (repo *RoomInfoRepository) Upsert(
	ctx context.Context,
	roomID string,
	info models.RoomInfo,
) error {
	query := `
		INSERT INTO rooms.room_info
		(room_id, full_name, capacity, has_pc, has_projector, description, floor, wing)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (room_id) DO UPDATE SET
			full_name = $2,
			capacity = $3,
			has_pc = $4,
			has_projector = $5,
			description = $6,
			floor = $7,
			wing = $8
	`

	var wing *string
	if info.Wing != nil {
		value := string(*info.Wing)
		wing = &value
	}

	_, err := repo.db.Exec(
		ctx,
		query,
		roomID,
		info.FullName,
		info.Capacity,
		info.PC,
		info.Projector,
		info.Description,
		info.Floor,
		wing,
	)

	if err != nil {
		return postgres.PgxErrorToHTTPError(err)
	}

	return nil
}

func scanRoomInfo(row pgx.Row) (models.RoomInfo, error) {
	var info models.RoomInfo
	var wing *string

	err := row.Scan(
		&info.FullName,
		&info.Capacity,
		&info.PC,
		&info.Projector,
		&info.Description,
		&info.Floor,
		&wing,
	)
	if err != nil {
		return models.RoomInfo{}, err
	}

	info.Wing = wingFromColumn(wing)

	return info, nil
}

func wingFromColumn(wing *string) *models.Wing {
	if wing == nil {
		return nil
	}

	value := models.Wing(*wing)

	return &value
}
