package log

// app.Run refuses to start when Version is below MinCompatibleVersion. Bump
// the minimum when Logger or Field change in a way windows would notice.
const (
	Version              = "1.0.0"
	MinCompatibleVersion = "1.0.0"
)
