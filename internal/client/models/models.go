// Package models defines client-side data models cached by the WolfNotes CLI.
package models

import "time"

// Role distinguishes the two account kinds the platform knows about.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// User is the profile of the account signed in on this device.
// One row per device; overwritten wholesale on every successful fetch.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Institution string `json:"institution,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

// Class is one course visible to the current user.
type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClassCode string `json:"classCode"`
	ClassDesc string `json:"classDesc"`
	Section   string `json:"section,omitempty"`
	Tags      string `json:"tags,omitempty"`
	Archived  bool   `json:"archived"`
}

// Note is the metadata of an uploaded note. The PDF body itself is fetched
// on demand and never cached.
type Note struct {
	ID         string    `json:"id"`
	ClassID    string    `json:"classID"`
	UploaderID string    `json:"uploaderID"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	Upvotes    int       `json:"upvotes"`
}

// Student is a roster line for a class.
type Student struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Author resolves a note uploader id to a display name without repeated
// lookups. Entries never expire; staleness is the price of offline reads.
type Author struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	FullName  string    `json:"fullName"`
	CachedAt  time.Time `json:"cachedAt"`
}

// PendingUpload is an outbox entry: a note created while offline, waiting to
// be replayed against the server. Rows are inserted and deleted, never
// updated; TempID is assigned by the store and orders FIFO replay.
type PendingUpload struct {
	TempID    int64
	Title     string
	ClassID   string
	FileBlob  []byte
	FileName  string
	FileType  string
	CreatedAt time.Time
}
