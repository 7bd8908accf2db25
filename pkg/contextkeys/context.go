package contextkeys

type contextKey string

const (
	// DBContextKey holds the *gorm.DB (pool or test transaction) for a request.
	DBContextKey = contextKey("db")

	// UserIDKey / AddressKey are set by the auth middlewares from JWT claims.
	UserIDKey  = contextKey("userID")
	AddressKey = contextKey("address")

	// LocalizerKey holds the i18n.Localizer negotiated for the request.
	LocalizerKey = contextKey("localizer")
)
