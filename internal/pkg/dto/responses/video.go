package responses

type VideoCall struct {
	Status string `json:"status"`
	RoomID string `json:"room_id"`
	Doctor string `json:"doctor"`
}
