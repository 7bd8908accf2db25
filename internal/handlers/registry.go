package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	SubmissionHandler   *SubmissionHandler
	ReviewHandler       *ReviewHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
