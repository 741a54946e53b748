package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Version is written into every recording. Recordings with another major
// version are refused.
const Version = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	IP  bool `json:"ip,omitempty"`  // InteractPressed
	IH  bool `json:"ih,omitempty"`  // InteractHeld
	IR  bool `json:"ir,omitempty"`  // InteractReleased
	C   bool `json:"c,omitempty"`   // Cancel
	NV  bool `json:"nv,omitempty"`  // NextVerb
	PV  bool `json:"pv,omitempty"`  // PrevVerb
	MDX int  `json:"mdx,omitempty"` // MouseDX
	MDY int  `json:"mdy,omitempty"` // MouseDY
}

// ReplayData contains all data needed to replay a session. Play is fully
// determined by the level and the inputs, so no seed is stored.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewReplayData starts an empty recording of level
func NewReplayData(level string) ReplayData {
	return ReplayData{
		Version:   Version,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
	}
}

// Write encodes data as indented JSON
func Write(w io.Writer, data ReplayData) error {
	if len(data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Read decodes a recording and checks its version
func Read(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if major(data.Version) != major(Version) {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("replay names no level")
	}
	return &data, nil
}

func major(v string) string {
	m, _, _ := strings.Cut(v, ".")
	return m
}
