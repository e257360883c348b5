package censor

import (
	"time"

	"wordguard/pkg/models"
)

// Review censors the text of comment and returns the moderation verdict.
func (c *Censor) Review(comment models.Comment) models.Verdict {
	res := c.Censor(comment.Text)

	v := models.Verdict{
		CommentID: comment.ID,
		Allowed:   len(res.Matched) == 0,
		Matched:   res.Matched,
		CheckedAt: time.Now().UTC(),
	}
	if !v.Allowed {
		v.Censored = res.Text
	}

	return v
}
