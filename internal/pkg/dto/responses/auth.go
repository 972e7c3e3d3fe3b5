package responses

type Profile struct {
	User map[string]interface{} `json:"user"`
}
