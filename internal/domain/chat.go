package domain

// Answer is the result of a successful ask: the original question echoed
// back alongside the model's answer.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// UploadResult reports a stored upload back to the client.
type UploadResult struct {
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	TextLength int    `json:"text_length"`
}
