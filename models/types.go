package models

import "time"

// Draw latch states
const (
	DrawNotGenerated = "not_generated"
	DrawGenerated    = "generated"
)

// Reveal latch states
const (
	RevealPending  = "pending"
	RevealRevealed = "revealed"
)

// Request types

type AddParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Names separated by newlines or commas
type BulkAddRequest struct {
	Names string `json:"names"`
}

type SetGiftRulesRequest struct {
	Rules string `json:"rules"`
}

type RevealRequest struct {
	Token string `json:"token"`
}

// Response types

type AddParticipantResponse struct {
	Success     bool        `json:"success"`
	Participant Participant `json:"participant"`
}

type ParticipantsResponse struct {
	Success      bool          `json:"success"`
	Participants []Participant `json:"participants"`
}

type BulkAddResponse struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message"`
	Added        []Participant `json:"added"`
	Skipped      []string      `json:"skipped"`
	AddedCount   int           `json:"added_count"`
	SkippedCount int           `json:"skipped_count"`
}

type SettingsResponse struct {
	Success  bool     `json:"success"`
	Settings Settings `json:"settings"`
}

type DrawResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Draws   []DrawResult `json:"draws"`
}

type RevealResponse struct {
	Success      bool      `json:"success"`
	GiverName    string    `json:"giver_name"`
	ReceiverName string    `json:"receiver_name"`
	GiftRules    string    `json:"gift_rules"`
	RevealedAt   time.Time `json:"revealed_at"`
}

type StatisticsResponse struct {
	Success    bool       `json:"success"`
	Statistics Statistics `json:"statistics"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Domain types

type Participant struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	AddedAt time.Time `json:"added_at"`
}

type Assignment struct {
	ID          string     `json:"id"`
	GiverID     string     `json:"giver_id"`
	ReceiverID  string     `json:"receiver_id"`
	Token       string     `json:"token"`
	RevealState string     `json:"reveal_state"`
	RevealedAt  *time.Time `json:"revealed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Revealed reports whether the assignment has left the pending state.
func (a Assignment) Revealed() bool {
	return a.RevealState == RevealRevealed
}

// DrawResult is an assignment joined with participant names, as shown to the admin.
type DrawResult struct {
	GiverID      string     `json:"giver_id"`
	GiverName    string     `json:"giver_name"`
	ReceiverID   string     `json:"receiver_id"`
	ReceiverName string     `json:"receiver_name"`
	Token        string     `json:"token"`
	Link         string     `json:"link,omitempty"`
	Revealed     bool       `json:"revealed"`
	RevealedAt   *time.Time `json:"revealed_at"`
}

type Settings struct {
	GiftValueRules string     `json:"gift_value_rules"`
	DrawGenerated  bool       `json:"draw_generated"`
	DrawDate       *time.Time `json:"draw_date"`
}

// RevealResult is everything a participant may learn from their own token.
type RevealResult struct {
	GiverName    string
	ReceiverName string
	GiftRules    string
	RevealedAt   time.Time
}

type Statistics struct {
	TotalParticipants    int        `json:"total_participants"`
	DrawGenerated        bool       `json:"draw_generated"`
	DrawDate             *time.Time `json:"draw_date"`
	DrawAge              string     `json:"draw_age,omitempty"`
	TotalDraws           int        `json:"total_draws"`
	RevealedCount        int        `json:"revealed_count"`
	PendingReveals       int        `json:"pending_reveals"`
	CompletionPercentage int        `json:"completion_percentage"`
}

// Export is a point-in-time snapshot of the whole dataset.
type Export struct {
	ExportDate   time.Time     `json:"export_date"`
	Participants []Participant `json:"participants"`
	Settings     Settings      `json:"settings"`
	Draws        []DrawResult  `json:"draws"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
