package i18n

// Keys used by the presenters.
const (
	KeyAccept              = "actions.accept"
	KeyRateFulfiller       = "actions.rate_fulfiller"
	KeyRateIssuer          = "actions.rate_issuer"
	KeyLoadMore            = "actions.load_more"
	KeyDescription         = "common.description"
	KeyNotAvailable        = "common.not_available"
	KeyServerError         = "errors.500"
	KeyNotificationsTitle  = "sections.notifications.title"
	KeyMarkRead            = "sections.notifications.actions.mark_read"
	KeyZeroStateTitle      = "sections.notifications.zero_state.title"
	KeyZeroStateText       = "sections.notifications.zero_state.description"
	KeySubmissionFiles     = "sections.submission.files"
	KeyNotificationPrefix  = "notifications."
	KeyFulfillmentAccepted = "sections.submission.accepted"
)

var english = map[string]string{
	KeyAccept:              "Accept",
	KeyRateFulfiller:       "Rate fulfiller",
	KeyRateIssuer:          "Rate issuer",
	KeyLoadMore:            "Load more",
	KeyDescription:         "Description",
	KeyNotAvailable:        "N/A",
	KeyServerError:         "Something went wrong. Please try again later.",
	KeyNotificationsTitle:  "Notifications",
	KeyMarkRead:            "Mark all as read",
	KeyZeroStateTitle:      "You're all caught up",
	KeyZeroStateText:       "Notifications about your bounties and submissions will show up here.",
	KeySubmissionFiles:     "Submission files",
	KeyFulfillmentAccepted: "Accepted",

	"stages.draft":     "Draft",
	"stages.active":    "Active",
	"stages.dead":      "Dead",
	"stages.completed": "Completed",
	"stages.expired":   "Expired",
	"stages.unknown":   "Unknown",

	"notifications.fulfillment_submitted": "New submission received",
	"notifications.fulfillment_accepted":  "Your submission was accepted",
	"notifications.rating_issued":         "You received a new rating",
	"notifications.bounty_expired":        "Your bounty has expired",
}

var russian = map[string]string{
	KeyAccept:              "Принять",
	KeyRateFulfiller:       "Оценить исполнителя",
	KeyRateIssuer:          "Оценить заказчика",
	KeyLoadMore:            "Загрузить ещё",
	KeyDescription:         "Описание",
	KeyNotAvailable:        "Нет данных",
	KeyServerError:         "Что-то пошло не так. Попробуйте позже.",
	KeyNotificationsTitle:  "Уведомления",
	KeyMarkRead:            "Отметить все как прочитанные",
	KeyZeroStateTitle:      "Новых уведомлений нет",
	KeyZeroStateText:       "Здесь появятся уведомления о ваших баунти и работах.",
	KeySubmissionFiles:     "Файлы работы",
	KeyFulfillmentAccepted: "Принято",

	"stages.draft":     "Черновик",
	"stages.active":    "Активно",
	"stages.dead":      "Закрыто",
	"stages.completed": "Завершено",
	"stages.expired":   "Истекло",

	"notifications.fulfillment_submitted": "Получена новая работа",
	"notifications.fulfillment_accepted":  "Ваша работа принята",
	"notifications.rating_issued":         "Вы получили новую оценку",
	"notifications.bounty_expired":        "Срок вашего баунти истёк",
}
