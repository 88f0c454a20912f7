package feed

import (
	"bytes"
	"encoding/json"
	"strings"
)

// WGEntry is a release line in the Node.js Release WG schedule.json.
type WGEntry struct {
	Start       string `json:"start"`
	LTS         string `json:"lts"`
	Maintenance string `json:"maintenance"`
	End         string `json:"end"`
	Codename    string `json:"codename"`
}

// EOLEntry is a release cycle in the endoflife.date product API.
type EOLEntry struct {
	Cycle       Scalar `json:"cycle"`
	ReleaseDate Scalar `json:"releaseDate"`
	EOL         Scalar `json:"eol"`
	Codename    Scalar `json:"codename"`
}

// Scalar accepts a JSON string, number, boolean or null.
// endoflife.date uses false for "no date" and sometimes numbers for cycles.
// Booleans and null decode to an empty string.
type Scalar string

func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")), bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		*s = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(strings.TrimSpace(str))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Scalar(n.String())
	return nil
}
