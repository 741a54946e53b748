package entity

// EntityID is a unique identifier for an entity (0 is "no entity")
type EntityID uint64

// Vec3 is a small 3D vector used for bone directions and camera offsets.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
)

// Tile represents a single tile in the room
type Tile struct {
	Type  TileType
	Solid bool
}

// Room represents the current room's tile data.
// Entity positions are expressed in tile coordinates.
type Room struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
	SpawnX   int
	SpawnY   int
}

// InBounds reports whether the tile coordinates lie inside the room
func (r *Room) InBounds(tx, ty int) bool {
	return tx >= 0 && tx < r.Width && ty >= 0 && ty < r.Height
}

// GetTile returns the tile at the given tile coordinates
func (r *Room) GetTile(tx, ty int) Tile {
	if !r.InBounds(tx, ty) {
		return Tile{Type: TileWall, Solid: true}
	}
	return r.Tiles[ty][tx]
}

// IsSolidAt checks if the tile at tile coordinates is solid
func (r *Room) IsSolidAt(tx, ty int) bool {
	return r.GetTile(tx, ty).Solid
}
