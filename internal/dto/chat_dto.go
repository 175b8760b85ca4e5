package dto

type ChatMessage struct {
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`

	// ActionEmail tells the widget to offer the mail call to action.
	ActionEmail bool `json:"action_email"`
}
