package dtos

import "time"

type SubscribeMessageDto struct {
	Subject string `json:"subject"`
}

// TVStateDto is the snapshot pushed to the TV screens.
type TVStateDto struct {
	RefreshedAt time.Time   `json:"refreshedAt"`
	Rooms       []TVRoomDto `json:"rooms"`
}

type TVRoomDto struct {
	Name     string `json:"name"`
	State    string `json:"state"`
	Color    string `json:"color"`
	Headline string `json:"headline"`
	SubText  string `json:"subText"`
	Progress int    `json:"progress"`
}

func (dto SubscribeMessageDto) Topic() string {
	return dto.Subject
}

func (dto SubscribeMessageDto) Validate() (bool, map[string]string) {
	return true, make(map[string]string)
}
