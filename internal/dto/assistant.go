package dto

type AskRequest struct {
	Text string `json:"text" validate:"required"`
}

type AskResponse struct {
	Reply   string `json:"reply"`
	Outcome string `json:"outcome"`
	EntryID string `json:"entry_id,omitempty"`
	Score   int    `json:"score,omitempty"`
}
