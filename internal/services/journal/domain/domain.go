// Package domain defines recipients, messages and the compose workflow ports
package domain

import (
	"context"

	"sayitanyway/internal/core/langhint"
	"sayitanyway/internal/core/screening"
)

// Gender of a recipient as offered by the profile form
type Gender string

// Genders
const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "Non-Binary"
	GenderDeclined  Gender = "Decline to State"
)

// Recipient is someone the user writes to
type Recipient struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Nickname      string `json:"nickname,omitempty"`
	Gender        Gender `json:"gender,omitempty"`
	PhotoURI      string `json:"photoUri,omitempty"`
	DateOfBirth   string `json:"dateOfBirth,omitempty"`
	DateOfDeath   string `json:"dateOfDeath,omitempty"`
	Notes         string `json:"notes,omitempty"`
	LastMessageAt int64  `json:"lastMessageTimestamp,omitempty"` // unix ms
	IsDefault     bool   `json:"isDefault,omitempty"`
}

// RecipientInput is the editable part of a Recipient
type RecipientInput struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Nickname    string `json:"nickname" validate:"max=100"`
	Gender      Gender `json:"gender" validate:"omitempty,oneof=Male Female Non-Binary 'Decline to State'"`
	PhotoURI    string `json:"photoUri" validate:"max=2048"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath string `json:"dateOfDeath" validate:"omitempty,datetime=2006-01-02"`
	Notes       string `json:"notes" validate:"max=5000"`
	IsDefault   bool   `json:"isDefault"`
}

// Apply copies the input onto r, keeping identity and message bookkeeping
func (in RecipientInput) Apply(r Recipient) Recipient {
	r.Name = in.Name
	r.Nickname = in.Nickname
	r.Gender = in.Gender
	r.PhotoURI = in.PhotoURI
	r.DateOfBirth = in.DateOfBirth
	r.DateOfDeath = in.DateOfDeath
	r.Notes = in.Notes
	r.IsDefault = in.IsDefault
	return r
}

// MessageType is text or audio
type MessageType string

// Message types
const (
	MessageText  MessageType = "text"
	MessageAudio MessageType = "audio"
)

// TranscriptionStatus tracks audio transcription
type TranscriptionStatus string

// Transcription states
const (
	TranscriptionNone      TranscriptionStatus = "none"
	TranscriptionPending   TranscriptionStatus = "pending"
	TranscriptionCompleted TranscriptionStatus = "completed"
	TranscriptionFailed    TranscriptionStatus = "failed"
)

// Message is one journal entry addressed to a recipient
type Message struct {
	ID                  string              `json:"id"`
	RecipientID         string              `json:"recipientId"`
	Timestamp           int64               `json:"timestamp"` // unix ms
	Type                MessageType         `json:"type"`
	TextContent         string              `json:"textContent,omitempty"`
	AudioURI            string              `json:"audioUri,omitempty"`
	AudioDuration       int                 `json:"audioDuration,omitempty"` // seconds
	Transcript          string              `json:"transcript,omitempty"`
	TranscriptionStatus TranscriptionStatus `json:"transcriptionStatus,omitempty"`
	TranscriptionError  string              `json:"transcriptionError,omitempty"`
	IsHidden            bool                `json:"isHidden"`
}

// ComposeInput is a message about to be saved
type ComposeInput struct {
	RecipientID     string      `json:"recipientId" validate:"notblank"`
	Type            MessageType `json:"type" validate:"required,oneof=text audio"`
	Text            string      `json:"text" validate:"max=20000"`
	AudioURI        string      `json:"audioUri" validate:"required_if=Type audio,max=2048"`
	DurationSeconds int         `json:"durationSeconds" validate:"required_if=Type audio,gte=0"`
}

// ComposeResult is the saved message and its screening verdict.
// RedirectToSupport asks the caller to show support resources after saving
type ComposeResult struct {
	Message           Message          `json:"message"`
	Screening         screening.Result `json:"screening"`
	RedirectToSupport bool             `json:"redirectToSupport"`
	Language          langhint.Hint    `json:"language"`
}

// Charger is the part of the ledger compose needs
type Charger interface {
	HasRecordingTime(ctx context.Context, seconds int) (bool, error)
	DeductRecordingTime(ctx context.Context, seconds int) (bool, error)
	GetTotalRecordingTime(ctx context.Context) (int, error)
}

// Transcriber turns a recording into text
type Transcriber interface {
	Transcribe(ctx context.Context, audioURI string, seconds int) (string, error)
}

// Needs are the ports the journal takes from other modules
type Needs struct {
	Ledger      Charger
	Screener    screening.Screener
	Transcriber Transcriber
}

// Store persists recipients and messages
type Store interface {
	Recipients(ctx context.Context) ([]Recipient, error)
	SaveRecipients(ctx context.Context, rs []Recipient) error
	Messages(ctx context.Context) ([]Message, error)
	SaveMessages(ctx context.Context, ms []Message) error
}

// ServicePort is the journal surface
type ServicePort interface {
	AddRecipient(ctx context.Context, in RecipientInput) (Recipient, error)
	UpdateRecipient(ctx context.Context, id string, in RecipientInput) (Recipient, error)
	DeleteRecipient(ctx context.Context, id string) error
	GetRecipient(ctx context.Context, id string) (Recipient, error)
	ListRecipients(ctx context.Context) ([]Recipient, error)

	ListMessages(ctx context.Context, recipientID string, includeHidden bool) ([]Message, error)
	HideMessage(ctx context.Context, id string, hidden bool) error
	DeleteMessage(ctx context.Context, id string) error

	Compose(ctx context.Context, in ComposeInput) (ComposeResult, error)
}
