package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	// IssuesFound signals a completed run that surfaced link issues.
	// It maps to exit code 1, the tool's normal failure signal.
	IssuesFound ErrorCode = "IssuesFound"
	// InvalidArguments covers unusable flag or positional values
	InvalidArguments ErrorCode = "InvalidArguments"
	// ConfigFileError covers an unreadable or malformed config file
	ConfigFileError ErrorCode = "ConfigFileError"
	// ReportWriteError covers failures writing the report artifact
	ReportWriteError ErrorCode = "ReportWriteError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
