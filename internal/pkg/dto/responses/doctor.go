package responses

type Doctor struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Speciality string `json:"speciality"`
}

type Consultation struct {
	Status      string      `json:"status"`
	ConsultWith interface{} `json:"consult_with"`
}
