// internal/models/profile.go
package models

import "time"

// Profile is the job seeker profile.
type Profile struct {
	ID         string       `json:"id,omitempty"`
	UserID     string       `json:"userId,omitempty"`
	FirstName  string       `json:"firstName"`
	LastName   string       `json:"lastName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone,omitempty"`
	Headline   string       `json:"headline,omitempty"`
	About      string       `json:"about,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Location   Location     `json:"location"`
	ResumeURL  string       `json:"resumeUrl,omitempty"`
	AvatarURL  string       `json:"avatarUrl,omitempty"`
	UpdatedAt  time.Time    `json:"updatedAt,omitempty"`
}

type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
	Current bool   `json:"current,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// Upload is a file sent as a multipart form part.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult carries the stored file's URL.
type UploadResult struct {
	URL string `json:"url"`
}
