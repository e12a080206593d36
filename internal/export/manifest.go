package export

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one written frame.
type ManifestEntry struct {
	Frame     int    `json:"frame"`
	Tick      int    `json:"tick"`
	Direction int    `json:"direction"`
	Image     string `json:"image"`
}

// Manifest lists the frames of one render run.
type Manifest struct {
	CycleLength    int             `json:"cycle_length"`
	ReversalTarget int             `json:"reversal_target"`
	Width          int             `json:"width"`
	Height         int             `json:"height"`
	Frames         []ManifestEntry `json:"frames"`
}

// WriteManifest writes m to path, listing only successfully written frames.
func WriteManifest(path string, m Manifest, results []Result) error {
	m.Frames = make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame:     r.Index,
			Tick:      r.Tick,
			Direction: r.Direction,
			Image:     r.Path,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
