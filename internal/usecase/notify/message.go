package notify

import (
	"time"

	"proclubs-notify/internal/domain/entity"
)

// Fixed literals of the outbound notification. All user-facing copy is
// Italian, matching the audience of the destination channel.
const (
	releaseTitle  = "🆓 Giocatore svincolato!"
	releaseFooter = "Ultimate Pro Clubs"

	fieldPlayer = "👤 Giocatore"
	fieldTeam   = "🏟️ Ex Team"
	fieldReason = "📄 Motivo"
	fieldDate   = "📅 Data"

	reasonVoluntaryLeave   = "Giocatore ha lasciato volontariamente la squadra"
	reasonRemovedByCaptain = "Giocatore rimosso dal capitano della squadra"

	buttonLabel     = "Visualizza giocatore"
	playerURLPrefix = "https://app.ultimateproclubs.com/player/"

	// Discord green
	releaseColor = 0x00FF00
)

// Message is a channel-neutral rich notification: a titled embed with
// labeled fields, a footer, and a single outbound link button.
type Message struct {
	Title     string
	Color     int
	Fields    []Field
	Button    Button
	Footer    string
	Timestamp time.Time
}

// Field is one labeled value of the embed. Inline fields render side by side.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// Button is a link-style button attached below the embed.
type Button struct {
	Label string
	URL   string
}

// BuildReleaseMessage maps a validated release event to the notification
// message. It is a pure function: given the same event and now, it produces
// the same message. now only feeds the embed's own timestamp metadata.
func BuildReleaseMessage(ev *entity.PlayerReleaseEvent, now time.Time) Message {
	return Message{
		Title: releaseTitle,
		Color: releaseColor,
		Fields: []Field{
			{Name: fieldPlayer, Value: ev.Username, Inline: true},
			{Name: fieldTeam, Value: ev.PreviousTeamName, Inline: true},
			{Name: fieldReason, Value: reasonDescription(ev.Reason), Inline: false},
			{Name: fieldDate, Value: formatReleaseDate(ev.Timestamp), Inline: true},
		},
		Button: Button{
			Label: buttonLabel,
			URL:   playerURLPrefix + ev.UserID,
		},
		Footer:    releaseFooter,
		Timestamp: now,
	}
}

// reasonDescription maps recognized reason codes to their Italian
// description; any other value passes through verbatim.
func reasonDescription(reason string) string {
	switch reason {
	case entity.ActionVoluntaryLeave:
		return reasonVoluntaryLeave
	case entity.ActionRemovedByCaptain:
		return reasonRemovedByCaptain
	default:
		return reason
	}
}

// formatReleaseDate renders the event instant in Italian date conventions,
// DD/MM/YYYY HH:MM, preserving the zone the timestamp was sent in.
func formatReleaseDate(ts time.Time) string {
	return ts.Format("02/01/2006 15:04")
}
