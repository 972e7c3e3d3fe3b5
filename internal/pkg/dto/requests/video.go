package requests

type StartVideoCall struct {
	Doctor  string `json:"doctor" validate:"max=200"`
	Patient string `json:"patient" validate:"max=200"`
}
