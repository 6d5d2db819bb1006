// Package seed holds the hard-coded sample records that stand in for a
// backend. The stores fall back to these on first start, when nothing has
// been persisted yet, and persist them immediately so later runs read them
// back from storage.
package seed

import (
	"time"

	"github.com/sakif/achievement-society/internal/model"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Users returns the sample member directory. These accounts carry no
// password hash, so sign-in accepts any password for them.
func Users() []model.User {
	return []model.User{
		{
			ID:             "1",
			Username:       "johndoe",
			FullName:       "John Doe",
			Email:          "john@college.edu",
			ProfilePicture: "https://images.unsplash.com/photo-1599566150163-29194dcaad36",
			Bio:            "Computer Science student passionate about AI and machine learning",
			College:        "Tech University",
			Course:         "Computer Science",
			GradYear:       2025,
			CreatedAt:      date(2023, time.January, 15),
		},
		{
			ID:             "2",
			Username:       "janedoe",
			FullName:       "Jane Doe",
			Email:          "jane@college.edu",
			ProfilePicture: "https://images.unsplash.com/photo-1580489944761-15a19d654956",
			Bio:            "Engineering student with interest in renewable energy",
			College:        "Engineering Institute",
			Course:         "Electrical Engineering",
			GradYear:       2024,
			CreatedAt:      date(2023, time.February, 22),
		},
	}
}

// Achievements returns the sample feed, newest first.
func Achievements() []model.Achievement {
	return []model.Achievement{
		{
			ID:          "a1",
			UserID:      "1",
			Title:       "First Place in University Hackathon",
			Description: "Won first place in the annual university hackathon with our project 'EcoTrack', an app that helps users track and reduce their carbon footprint.",
			Category:    model.CategoryHackathon,
			ImageURL:    "https://images.unsplash.com/photo-1490049350474-498de6046883",
			Tags:        []string{"Hackathon", "Sustainability", "App Development"},
			Date:        date(2023, time.November, 15),
			CreatedAt:   date(2023, time.November, 16),
			Likes:       []string{"2"},
		},
		{
			ID:          "a2",
			UserID:      "2",
			Title:       "Research Paper Published",
			Description: "My research paper on renewable energy solutions was published in the International Journal of Sustainable Engineering.",
			Category:    model.CategoryResearch,
			Links:       []string{"https://example.com/paper"},
			Tags:        []string{"Research", "Renewable Energy", "Publication"},
			Date:        date(2023, time.October, 5),
			CreatedAt:   date(2023, time.October, 10),
			Likes:       []string{"1"},
		},
		{
			ID:            "a3",
			UserID:        "1",
			Title:         "Microsoft Imagine Cup Finalist",
			Description:   "Our team made it to the finals of the Microsoft Imagine Cup with our AI-powered healthcare solution.",
			Category:      model.CategoryCompetition,
			ImageURL:      "https://images.unsplash.com/photo-1519389950473-47ba0277781c",
			Tags:          []string{"Competition", "AI", "Healthcare"},
			Collaborators: []string{"Jane Doe", "Mike Smith"},
			Date:          date(2023, time.September, 20),
			CreatedAt:     date(2023, time.September, 22),
			Likes:         []string{},
		},
	}
}

// Comments returns the sample comments.
func Comments() []model.Comment {
	return []model.Comment{
		{
			ID:            "c1",
			AchievementID: "a1",
			UserID:        "2",
			Text:          "Congratulations! This project sounds amazing.",
			CreatedAt:     date(2023, time.November, 17),
		},
		{
			ID:            "c2",
			AchievementID: "a2",
			UserID:        "1",
			Text:          "Great work on getting published!",
			CreatedAt:     date(2023, time.October, 12),
		},
	}
}
