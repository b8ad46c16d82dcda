package kitchen

import "fmt"

// Object is an item instance resting on a cell. Containers such as bags
// and assembled burgers carry their contents.
type Object struct {
	DefinitionID string   `json:"definition_id"`
	State        string   `json:"state,omitempty"`
	Contents     []Object `json:"contents,omitempty"`
}

type Cell struct {
	Type   string  `json:"type"`
	Object *Object `json:"object,omitempty"`
	State  string  `json:"state,omitempty"`
}

type Room struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`
}

func NewRoom(name string, width, height int, floor string) *Room {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r := &Room{Name: name, Width: width, Height: height, Cells: make([]Cell, width*height)}
	for i := range r.Cells {
		r.Cells[i].Type = floor
	}
	return r
}

// Cell returns nil for coordinates outside the room.
func (r *Room) Cell(x, y int) *Cell {
	if r == nil || x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return nil
	}
	idx := y*r.Width + x
	if idx >= len(r.Cells) {
		return nil
	}
	return &r.Cells[idx]
}

// Validate reports a room whose cell slice does not cover its grid.
func (r *Room) Validate() error {
	if r == nil {
		return fmt.Errorf("room: missing")
	}
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("room %q: invalid size %dx%d", r.Name, r.Width, r.Height)
	}
	if len(r.Cells) != r.Width*r.Height {
		return fmt.Errorf("room %q: has %d cells, want %d", r.Name, len(r.Cells), r.Width*r.Height)
	}
	return nil
}

func (r *Room) SetTile(x, y int, tileID string) bool {
	cell := r.Cell(x, y)
	if cell == nil {
		return false
	}
	cell.Type = tileID
	return true
}

// PutObject places obj on an empty cell.
func (r *Room) PutObject(x, y int, obj Object) bool {
	cell := r.Cell(x, y)
	if cell == nil || cell.Object != nil {
		return false
	}
	o := obj
	cell.Object = &o
	return true
}

func (r *Room) ClearObject(x, y int) {
	if cell := r.Cell(x, y); cell != nil {
		cell.Object = nil
		cell.State = ""
	}
}

type Position struct {
	Room int
	X    int
	Y    int
}

type World struct {
	Rooms []*Room `json:"rooms"`
}

// Find returns the first cell position whose tile is of the given appliance kind.
func (w *World) Find(catalog *Catalog, kind ApplianceKind) (Position, bool) {
	if w == nil {
		return Position{}, false
	}
	for ri, room := range w.Rooms {
		if room == nil {
			continue
		}
		for y := 0; y < room.Height; y++ {
			for x := 0; x < room.Width; x++ {
				cell := room.Cell(x, y)
				if cell == nil {
					continue
				}
				def, ok := catalog.Lookup(cell.Type)
				if ok && def.Appliance == kind {
					return Position{Room: ri, X: x, Y: y}, true
				}
			}
		}
	}
	return Position{}, false
}

func (w *World) Cell(pos Position) *Cell {
	if w == nil || pos.Room < 0 || pos.Room >= len(w.Rooms) {
		return nil
	}
	return w.Rooms[pos.Room].Cell(pos.X, pos.Y)
}

// FirstFree returns the first cell in room with a walkable tile and no object.
func (w *World) FirstFree(room int, tileID string) (Position, bool) {
	if w == nil || room < 0 || room >= len(w.Rooms) {
		return Position{}, false
	}
	r := w.Rooms[room]
	if r == nil {
		return Position{}, false
	}
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			cell := r.Cell(x, y)
			if cell != nil && cell.Object == nil && cell.Type == tileID {
				return Position{Room: room, X: x, Y: y}, true
			}
		}
	}
	return Position{}, false
}
