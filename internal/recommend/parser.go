// Package recommend turns a user's reading history into a model prompt and
// parses the model's free-text completion into structured recommendations.
package recommend

import (
	"strings"

	"github.com/booktrackapp/booktrack-server/internal/domain"
)

const (
	// blockDelimiter separates recommendation entries in the model output.
	blockDelimiter = "---"

	titlePrefix  = "Title:"
	authorPrefix = "Author:"
	reasonPrefix = "Reason:"

	// MaxRecommendations bounds the list returned to clients.
	MaxRecommendations = 5
)

// FallbackUnparsable is returned when the model output yields no valid
// entries. The response is still a success; malformed output is absorbed,
// never surfaced as an error.
var FallbackUnparsable = domain.Recommendation{
	Title:  "Unable to parse recommendations",
	Author: "",
	Reason: "Please try again or add more books to improve recommendations.",
}

// FallbackEmptyHistory is returned without consulting the model when the
// user has no books at all.
var FallbackEmptyHistory = domain.Recommendation{
	Title:  "Start by adding some books!",
	Author: "",
	Reason: "Add books you've read or are reading to get personalized AI recommendations based on your taste.",
}

// Parse extracts recommendations from raw model output.
//
// The model is instructed to emit blocks separated by "---", each with
// Title:/Author:/Reason: lines, but the output is untrusted: fields may be
// missing, duplicated, or absent entirely. Parse is total: it never fails
// and always returns between 1 and MaxRecommendations entries, substituting
// FallbackUnparsable when nothing valid can be extracted.
func Parse(raw string) []domain.Recommendation {
	var recs []domain.Recommendation

	for _, block := range strings.Split(raw, blockDelimiter) {
		// Cheap pre-filter before line-level parsing.
		if !strings.Contains(block, titlePrefix) || !strings.Contains(block, authorPrefix) {
			continue
		}

		var title, author, reason string
		for _, line := range strings.Split(strings.TrimSpace(block), "\n") {
			line = strings.TrimSpace(line)
			switch {
			case strings.HasPrefix(line, titlePrefix):
				if title == "" {
					title = strings.TrimSpace(strings.TrimPrefix(line, titlePrefix))
				}
			case strings.HasPrefix(line, authorPrefix):
				if author == "" {
					author = strings.TrimSpace(strings.TrimPrefix(line, authorPrefix))
				}
			case strings.HasPrefix(line, reasonPrefix):
				if reason == "" {
					reason = strings.TrimSpace(strings.TrimPrefix(line, reasonPrefix))
				}
			}
		}

		// Title and author are the acceptance gate; reason is optional.
		if title == "" || author == "" {
			continue
		}

		recs = append(recs, domain.Recommendation{
			Title:  title,
			Author: author,
			Reason: reason,
		})
		if len(recs) == MaxRecommendations {
			break
		}
	}

	if len(recs) == 0 {
		return []domain.Recommendation{FallbackUnparsable}
	}
	return recs
}
