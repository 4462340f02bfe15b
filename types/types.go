package types

type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

const (
	ContentTypeHTML  = "text/html"
	ContentTypePlain = "text/plain"
)

var NotFoundPage = []byte("<html><body><h1>404 - Not Found</h1></body></html>")
