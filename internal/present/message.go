package present

import ghub "github.com/stahnma/gh-explore/internal/github"

// NoResults is shown when a search resolves to nothing.
const NoResults = "The search returned no results"

// Message renders err as the single line shown to the user. Every error goes
// through here; retryable and fatal failures look the same.
func Message(err error) string {
	if err == nil {
		return ""
	}
	switch ghub.KindOf(err) {
	case ghub.NotFound:
		return NoResults
	case ghub.InvalidURL:
		return "Invalid URL."
	case ghub.RequestFailed:
		return "Request failed. Check your connection and try again."
	case ghub.InvalidResponse:
		return "Invalid response from the server."
	case ghub.NoData:
		return "No data received."
	case ghub.DecodingError:
		return "Could not read the server response."
	default:
		return "Something went wrong: " + err.Error()
	}
}
