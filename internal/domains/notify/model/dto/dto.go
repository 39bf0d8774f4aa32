package dto

type SendNotificationRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// NotificationResponse echoes the composed text. Sent is false when no chat is configured.
type NotificationResponse struct {
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}
