package constants

type contextKey string

// UserContextKey is where auth middlewares store the signed-in user.
const UserContextKey contextKey = "user"

// PublicReporter is the author recorded on reports filed without a session,
// e.g. from the TV screens.
const PublicReporter = "Public/TV"
