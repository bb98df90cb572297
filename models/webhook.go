package models

// WebhookPayload LINE webhook 请求体
type WebhookPayload struct {
	Destination string  `json:"destination,omitempty"`
	Events      []Event `json:"events"`
}

// Event 单个 webhook 事件，只处理文本消息事件
type Event struct {
	Type       string       `json:"type"`
	ReplyToken string       `json:"replyToken"`
	Message    EventMessage `json:"message"`
}

// EventMessage 事件内的消息内容
type EventMessage struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// IsText 是否为可处理的文本消息事件
func (e Event) IsText() bool {
	return e.Type == "message" && e.Message.Type == "text"
}
