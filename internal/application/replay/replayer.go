package replay

import (
	"fmt"
	"os"

	"github.com/younwookim/interactor/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}

// SaveReplay writes data to filename
func SaveReplay(filename string, data ReplayData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, data); err != nil {
		_ = file.Close()
		_ = os.Remove(filename)
		return err
	}
	return file.Close()
}

// Record converts live input into a frame record
func Record(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:   frame,
		L:   in.Left,
		R:   in.Right,
		U:   in.Up,
		D:   in.Down,
		IP:  in.InteractPressed,
		IH:  in.InteractHeld,
		IR:  in.InteractReleased,
		C:   in.Cancel,
		NV:  in.NextVerb,
		PV:  in.PrevVerb,
		MDX: in.MouseDX,
		MDY: in.MouseDY,
	}
}

// Input converts a frame record back into input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:             fi.L,
		Right:            fi.R,
		Up:               fi.U,
		Down:             fi.D,
		InteractPressed:  fi.IP,
		InteractHeld:     fi.IH,
		InteractReleased: fi.IR,
		Cancel:           fi.C,
		NextVerb:         fi.NV,
		PrevVerb:         fi.PV,
		MouseDX:          fi.MDX,
		MouseDY:          fi.MDY,
	}
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level the replay was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, level string) ReplayData {
	data := NewReplayData(level)
	data.Frames = make([]FrameInput, frames)
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i}
	}
	return data
}
