package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	SubmissionService   SubmissionService
	ReviewService       ReviewService
	NotificationService NotificationService
	EmailService        *EmailService
}
