package model

import "time"

// Comment is a remark on an achievement. AchievementID and UserID are
// immutable foreign keys; only the author may delete a comment, and all of
// an achievement's comments go with it when the achievement is deleted.
type Comment struct {
	ID            string    `json:"id"`
	AchievementID string    `json:"achievementId"`
	UserID        string    `json:"userId"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
}
