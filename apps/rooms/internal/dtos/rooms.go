package dtos

import "github.com/XDoubleU/essentia/pkg/validate"

// RoomFilterDto carries the dashboard's filter form. Times are "HH:MM"
// strings, Duration a number of minutes; both select the time-window
// availability filter and are mutually exclusive, window first.
type RoomFilterDto struct {
	Query     string `schema:"q"`
	PC        bool   `schema:"pc"`
	Projector bool   `schema:"proj"`
	Floor     string `schema:"etage"`
	Wing      string `schema:"aile"`
	Duration  string `schema:"duree_min"`
	StartTime string `schema:"heure_debut"`
	EndTime   string `schema:"heure_fin"`
}

func (dto *RoomFilterDto) Validate() (bool, map[string]string) {
	v := validate.New()

	// A half-specified window is the only invalid form; everything else
	// degrades to "filter not applied".
	if dto.StartTime != "" || dto.EndTime != "" {
		validate.Check(v, "heure_debut", dto.StartTime, validate.IsNotEmpty)
		validate.Check(v, "heure_fin", dto.EndTime, validate.IsNotEmpty)
	}

	return v.Valid(), v.Errors()
}

type ReportDto struct {
	ProblemType string `schema:"type_probleme"`
	Description string `schema:"description"`
}

func (dto *ReportDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "type_probleme", dto.ProblemType, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
