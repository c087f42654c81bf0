package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
)

type Repositories struct {
	Reports  *ReportRepository
	RoomInfo *RoomInfoRepository
}

func New(db postgres.DB) *Repositories {
	return &Repositories{
		Reports:  &ReportRepository{db: db},
		RoomInfo: &RoomInfoRepository{db: db},
	}
}
