package model

type LyriqStatus string

const (
	LyriqStatusNotYetStarted LyriqStatus = "not_yet_started"
	LyriqStatusInProgress    LyriqStatus = "in_progress"
	LyriqStatusDone          LyriqStatus = "done"
)

type statusLabel struct {
	text  string
	emoji string
}

var statusLabels = map[LyriqStatus]statusLabel{
	LyriqStatusNotYetStarted: {text: "_Not yet started_", emoji: "👻"},
	LyriqStatusInProgress:    {text: "_In progress_", emoji: "⏳"},
	LyriqStatusDone:          {text: "_Done_", emoji: "✅"},
}

func (x LyriqStatus) Valid() bool {
	_, ok := statusLabels[x]
	return ok
}

// Text is the italic status text rendered in the description.
func (x LyriqStatus) Text() string {
	return statusLabels[x].text
}

func (x LyriqStatus) Emoji() string {
	return statusLabels[x].emoji
}

// Rendered is "<text> <emoji>", the part after the pipe of a status line.
func (x LyriqStatus) Rendered() string {
	l := statusLabels[x]
	return l.text + " " + l.emoji
}

// ParseLyriqStatus maps a rendered status back to its state.
func ParseLyriqStatus(rendered string) (LyriqStatus, bool) {
	for status, l := range statusLabels {
		if rendered == l.text+" "+l.emoji {
			return status, true
		}
	}
	return "", false
}
