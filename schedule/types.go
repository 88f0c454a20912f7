package schedule

// Release holds the lifecycle dates of a single release line.
// An empty string means the date is not known.
type Release struct {
	Start       string `json:"start,omitempty"`
	LTS         string `json:"lts,omitempty"`
	Maintenance string `json:"maintenance,omitempty"`
	End         string `json:"end"`
	Codename    string `json:"codename,omitempty"`
}

// Schedule maps a major version to its release line.
type Schedule map[int]Release
