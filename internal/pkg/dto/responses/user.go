package responses

type UserCreated struct {
	ID string `json:"id"`
}
