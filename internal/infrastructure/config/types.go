package config

// SettingsConfig is the root config for settings.json
type SettingsConfig struct {
	Display     DisplayConfig     `json:"display"`
	Interaction InteractionConfig `json:"interaction"`
	Camera      CameraConfig      `json:"camera"`
	Door        DoorConfig        `json:"door"`
	Save        SaveConfig        `json:"save"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	TileSize     int    `json:"tileSize"`
	Title        string `json:"title"`
}

// InteractionConfig tunes targeting and holding
type InteractionConfig struct {
	Range         int     `json:"range"`         // tiles
	HoldThreshold int     `json:"holdThreshold"` // frames before a press counts as a hold
	LookScale     float64 `json:"lookScale"`     // mouse pixels to pitch/yaw
}

type CameraConfig struct {
	ThirdPersonOffset Vec3Config `json:"thirdPersonOffset"`
	ExamineZoom       float64    `json:"examineZoom"`
	ExamineDuration   float64    `json:"examineDuration"` // seconds
}

type Vec3Config struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type DoorConfig struct {
	Duration float64 `json:"duration"` // seconds
}

// SaveConfig names the persistent store
type SaveConfig struct {
	AppName string `json:"appName"`
	Slot    string `json:"slot"`
}
