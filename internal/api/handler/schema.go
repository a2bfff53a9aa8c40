package handler

// messageResponse is the envelope used for plain status messages and errors.
type messageResponse struct {
	Msg string `json:"msg"`
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type questionResponse struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// answerRequest uses pointers so that a missing field can be told apart from
// a zero value: {"id":1,"selected_option":""} is a valid (wrong) answer.
type answerRequest struct {
	ID             *int    `json:"id"              validate:"required"`
	SelectedOption *string `json:"selected_option" validate:"required"`
}

type submitRequest struct {
	Answers []answerRequest `json:"answers" validate:"dive"`
}

type scoreResponse struct {
	Score          int            `json:"score"`
	Total          int            `json:"total"`
	CorrectAnswers map[int]string `json:"correct_answers"`
}
