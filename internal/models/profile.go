package models

// Profile holds per-installation settings. Name personalizes the generated
// motivational message; coordinates feed the save-time metadata capture.
type Profile struct {
	Name                 string  `json:"name"`
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	Timezone             string  `json:"timezone"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
}

// HasCoordinates reports whether a location has been configured.
func (p *Profile) HasCoordinates() bool {
	return p != nil && (p.Latitude != 0 || p.Longitude != 0)
}
