package llm

// ClaudeRequest represents the Claude API request format.
type ClaudeRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []Message `json:"messages"`
}

// ClaudeResponse represents the Claude API response format.
type ClaudeResponse struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Role    string    `json:"role"`
	Content []Content `json:"content"`
	Model   string    `json:"model"`
	Usage   Usage     `json:"usage"`
}

// Message represents a message in the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Content represents content in the response.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Usage represents token usage information.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// HolisticInput is the prompt context for a holistic name analysis.
type HolisticInput struct {
	Name        string `json:"name"`
	Mode        string `json:"intent"`
	Birthdate   string `json:"birthdate,omitempty"`
	Goal        string `json:"goal"`
	BaseScore   int    `json:"baseScore"`
	Breakdown   any    `json:"breakdown"`
	CoreNumbers any    `json:"coreNumbers"`
	Tolerance   int    `json:"tolerance"`
}

// SuggestionInput is the prompt context for name suggestions.
type SuggestionInput struct {
	Name        string `json:"name"`
	Score       int    `json:"score"`
	Goal        string `json:"goal"`
	CoreNumbers any    `json:"coreNumbers"`
	Count       int    `json:"count"`
}

// PersonInput describes one person in a compatibility prompt.
type PersonInput struct {
	Name        string `json:"name"`
	CoreNumbers any    `json:"coreNumbers"`
}

// CompatibilityInput is the prompt context for a compatibility narrative.
type CompatibilityInput struct {
	First  PersonInput `json:"person1"`
	Second PersonInput `json:"person2"`
	Score  int         `json:"score"`
}

// InsightInput is the prompt context for a daily insight.
type InsightInput struct {
	Name        string `json:"userName"`
	CoreNumbers any    `json:"coreNumbers"`
	DayNumber   int    `json:"dayNumber"`
}
