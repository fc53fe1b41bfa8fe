package request

type CreateNotificationRequest struct {
	Title    string                 `json:"title"`
	Message  string                 `json:"message"`
	Type     string                 `json:"type"`
	UserId   *string                `json:"userId"`
	Metadata map[string]interface{} `json:"metadata"`
}

type MarkReadRequest struct {
	Uuid string `json:"uuid"`
}
