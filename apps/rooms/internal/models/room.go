package models

import "regexp"

type Wing string

const (
	WingLeft   Wing = "gauche"
	WingRight  Wing = "droite"
	WingCenter Wing = "centre"
)

// RoomInfo is the manually curated metadata of a room. Floor and Wing are
// optional overrides for the Locate heuristic.
type RoomInfo struct {
	FullName    string
	Capacity    string
	PC          bool
	Projector   bool
	Description string
	Floor       *int
	Wing        *Wing
}

// DefaultRoomInfo is what rooms without a metadata row get.
func DefaultRoomInfo(roomID string) RoomInfo {
	//nolint:exhaustruct //other fields default to zero values
	return RoomInfo{
		FullName:    "Salle " + roomID,
		Capacity:    "?",
		Description: "Pas d'info.",
	}
}

//nolint:gochecknoglobals //compiled once
var digitRun = regexp.MustCompile(`\d+`)

// Locate infers the floor and wing of a room from its identifier, unless
// the metadata overrides them.
//
// Floor is the leading digit of the identifier (0 when it does not start
// with one). Wing follows the numbering convention of the building: the
// first run of digits maps even numbers to the right wing and odd ones to
// the left; identifiers without digits sit in the center.
func Locate(roomID string, info RoomInfo) (int, Wing) {
	floor := 0
	if info.Floor != nil {
		floor = *info.Floor
	} else if len(roomID) > 0 && roomID[0] >= '0' && roomID[0] <= '9' {
		floor = int(roomID[0] - '0')
	}

	wing := WingCenter
	if info.Wing != nil {
		wing = *info.Wing
	} else if run := digitRun.FindString(roomID); run != "" {
		// Parity of the room number is the parity of its last digit.
		if (run[len(run)-1]-'0')%2 == 0 {
			wing = WingRight
		} else {
			wing = WingLeft
		}
	}

	return floor, wing
}
