package models

// Draft is a detached working copy of an entry's editable fields. It has no
// identity or timestamps of its own; those belong to the committed Entry.
type Draft struct {
	Text          string     `json:"text"`
	Mood          int        `json:"mood"`
	Media         []Media    `json:"media"`
	Reminders     []Reminder `json:"reminders"`
	Favorite      bool       `json:"favorite"`
	CustomMessage string     `json:"customMessage"`
}

// DraftSnapshot is the persisted form of a draft, stamped with the time the
// snapshot was written. The draft store and the entry store have independent
// lifecycles: a crash before commit leaves only the snapshot recoverable.
type DraftSnapshot struct {
	Draft
	UpdatedAt string `json:"updatedAt"`
}

// ApplyTo builds the candidate entry for a commit by overlaying the draft's
// editable fields onto the committed entry.
func (d *Draft) ApplyTo(entry Entry) Entry {
	entry.Text = d.Text
	entry.Mood = d.Mood
	entry.Media = d.Media
	entry.Reminders = d.Reminders
	entry.Favorite = d.Favorite
	entry.CustomMessage = d.CustomMessage
	return entry
}
