package sheets

import "fmt"

// RemoteError describes a failed spreadsheet API call. Code is the HTTP
// status; Detail is the backend's own message when one could be decoded.
// The rendered message includes a hint about what to check, so the error
// can be surfaced to the user verbatim.
type RemoteError struct {
	Code   int
	Detail string
}

func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("spreadsheet API error (status %d)", e.Code)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if h := hint(e.Code); h != "" {
		msg += "; " + h
	}
	return msg
}

// hint maps well-known status codes to a human-actionable follow-up.
func hint(code int) string {
	switch code {
	case 400:
		return "check the configured sheet name and column letters"
	case 401:
		return "check that the API token is valid and not expired"
	case 403:
		return "check that the spreadsheet is shared with the credentials in use"
	case 404:
		return "check the configured spreadsheet id"
	default:
		return ""
	}
}
