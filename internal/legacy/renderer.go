package legacy

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderLogText produces the human-readable description CubePoints would have
// shown for a log row. The legacy plugin built these strings at display time
// from the row's type and data, so an import has to reconstruct them up front.
func (s *Store) RenderLogText(logType string, userID int64, points int, data string) string {
	switch logType {
	case "misc":
		return data
	case "register":
		return "Registration."
	case "dailypoints":
		return "Daily points."
	case "post":
		return fmt.Sprintf("Published %s.", s.postLabel(data))
	case "comment":
		return fmt.Sprintf("Comment on %s.", s.commentPostLabel(data))
	case "comment_remove":
		return fmt.Sprintf("Comment removed from %s.", s.commentPostLabel(data))
	case "post_comment":
		return fmt.Sprintf("Received a comment on %s.", s.commentPostLabel(data))
	case "post_comment_remove":
		return fmt.Sprintf("Comment removed from %s.", s.commentPostLabel(data))
	default:
		return strings.ReplaceAll(logType, "_", " ")
	}
}

func (s *Store) postLabel(data string) string {
	postID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return "a post"
	}

	title, ok, err := s.PostTitle(postID)
	if err != nil || !ok || title == "" {
		return fmt.Sprintf("post #%d", postID)
	}
	return fmt.Sprintf("%q", title)
}

func (s *Store) commentPostLabel(data string) string {
	commentID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		return "a post"
	}

	postID, ok, err := s.CommentPostID(commentID)
	if err != nil || !ok {
		return "a post"
	}
	return s.postLabel(strconv.FormatInt(postID, 10))
}
