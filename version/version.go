package version

import (
	"fmt"
	"strings"
	"time"

	"miren.dev/ontology/pkg/ontology"
)

// Set at build time via -ldflags.
var (
	Version   = "unknown"
	Commit    = "unknown"
	BuildDate = "unknown"
)

type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	BuildDate time.Time `json:"build_date"`

	// Envelope is the payload envelope version this build writes.
	Envelope uint64 `json:"envelope"`
}

func GetInfo() Info {
	info := Info{
		Version:  Version,
		Commit:   Commit,
		Envelope: ontology.V0,
	}

	if BuildDate != "unknown" && BuildDate != "" {
		if t, err := time.Parse(time.RFC3339, BuildDate); err == nil {
			info.BuildDate = t.UTC()
		}
	}

	return info
}

func (i Info) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Version:  %s", i.Version)

	if i.Commit != "unknown" && i.Commit != "" {
		fmt.Fprintf(&sb, "\nCommit:   %s", i.Commit)
	}

	if !i.BuildDate.IsZero() {
		fmt.Fprintf(&sb, "\nBuilt:    %s", i.BuildDate.Format("2006-01-02 15:04:05 UTC"))
	}

	fmt.Fprintf(&sb, "\nEnvelope: v%d", i.Envelope)
	return sb.String()
}
