package datastructure

type Side uint8

const (
	SideNone Side = iota
	SideX
	SideY
)

func (s Side) Opposite() Side {
	switch s {
	case SideX:
		return SideY
	case SideY:
		return SideX
	default:
		return SideNone
	}
}

func (s Side) String() string {
	switch s {
	case SideX:
		return "X"
	case SideY:
		return "Y"
	default:
		return "-"
	}
}

// Partition assigns each vertex 1..V to X, Y or neither (while a heuristic is still building it).
// A vertex can only ever be on one side, so X and Y are disjoint by construction.
type Partition struct {
	sides []Side // sides[0] is the sentinel slot and stays SideNone
	sizeX int
	sizeY int
}

func NewPartition(numberOfVertices int) *Partition {
	return &Partition{
		sides: make([]Side, numberOfVertices+1),
	}
}

// NewPartitionFromFlags builds a complete partition, inX[v] == true puts v in X.
func NewPartitionFromFlags(inX []bool) *Partition {
	p := NewPartition(len(inX) - 1)
	for v := 1; v < len(inX); v++ {
		if inX[v] {
			p.Assign(Index(v), SideX)
		} else {
			p.Assign(Index(v), SideY)
		}
	}
	return p
}

func (p *Partition) NumberOfVertices() int {
	return len(p.sides) - 1
}

func (p *Partition) Side(v Index) Side {
	return p.sides[v]
}

func (p *Partition) InX(v Index) bool {
	return p.sides[v] == SideX
}

func (p *Partition) InY(v Index) bool {
	return p.sides[v] == SideY
}

func (p *Partition) IsAssigned(v Index) bool {
	return p.sides[v] != SideNone
}

// Assign puts v on side s, removing it from its previous side first.
func (p *Partition) Assign(v Index, s Side) {
	p.unassign(v)
	p.sides[v] = s
	switch s {
	case SideX:
		p.sizeX++
	case SideY:
		p.sizeY++
	}
}

func (p *Partition) unassign(v Index) {
	switch p.sides[v] {
	case SideX:
		p.sizeX--
	case SideY:
		p.sizeY--
	}
	p.sides[v] = SideNone
}

// Move flips an assigned vertex to the opposite side.
func (p *Partition) Move(v Index) {
	if p.sides[v] == SideNone {
		return
	}
	p.Assign(v, p.sides[v].Opposite())
}

func (p *Partition) SizeX() int {
	return p.sizeX
}

func (p *Partition) SizeY() int {
	return p.sizeY
}

func (p *Partition) NumberOfAssigned() int {
	return p.sizeX + p.sizeY
}

// IsComplete reports whether every vertex is on exactly one side.
func (p *Partition) IsComplete() bool {
	return p.sizeX+p.sizeY == p.NumberOfVertices()
}

func (p *Partition) X() []Index {
	return p.members(SideX, p.sizeX)
}

func (p *Partition) Y() []Index {
	return p.members(SideY, p.sizeY)
}

func (p *Partition) members(s Side, size int) []Index {
	out := make([]Index, 0, size)
	for v := 1; v < len(p.sides); v++ {
		if p.sides[v] == s {
			out = append(out, Index(v))
		}
	}
	return out
}

// Flags returns the bool vector representation used by Graph.CutValueOfFlags.
func (p *Partition) Flags() []bool {
	flags := make([]bool, len(p.sides))
	for v := 1; v < len(p.sides); v++ {
		flags[v] = p.sides[v] == SideX
	}
	return flags
}

func (p *Partition) Clone() *Partition {
	sides := make([]Side, len(p.sides))
	copy(sides, p.sides)
	return &Partition{
		sides: sides,
		sizeX: p.sizeX,
		sizeY: p.sizeY,
	}
}
