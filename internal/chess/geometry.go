package chess

// Direction is the compass bearing from an origin square to a target square.
type Direction int

const (
	NoDirection Direction = iota
	North
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// String returns the compass abbreviation of the direction.
func (d Direction) String() string {
	names := []string{"None", "N", "E", "S", "W", "NE", "SE", "SW", "NW"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// Step returns the file and rank increment of one step in the direction.
func (d Direction) Step() (df, dr int) {
	switch d {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	case NorthEast:
		return 1, 1
	case SouthEast:
		return 1, -1
	case SouthWest:
		return -1, -1
	case NorthWest:
		return -1, 1
	}
	return 0, 0
}

// IsDiagonal reports whether the direction is one of the four diagonals.
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast && d <= NorthWest
}

// IsStraight reports whether the direction runs along a rank or file.
func (d Direction) IsStraight() bool {
	return d >= North && d <= West
}

// StraightDirections are the four rank and file rays.
var StraightDirections = [4]Direction{North, East, South, West}

// DiagonalDirections are the four diagonal rays.
var DiagonalDirections = [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

// DirectionOf classifies the file and rank deltas independently and combines
// them. Equal magnitudes are not checked for diagonals; callers needing a true
// diagonal compare FileDistance and RankDistance.
func DirectionOf(originFile, originRank, targetFile, targetRank int) Direction {
	east := sign(targetFile - originFile)
	north := sign(targetRank - originRank)

	switch {
	case east == 0 && north == 0:
		return NoDirection
	case east == 0 && north > 0:
		return North
	case east == 0:
		return South
	case north == 0 && east > 0:
		return East
	case north == 0:
		return West
	case north > 0 && east > 0:
		return NorthEast
	case north > 0:
		return NorthWest
	case east > 0:
		return SouthEast
	default:
		return SouthWest
	}
}

// MoveGeometry describes the shape of a move between two squares.
type MoveGeometry struct {
	OriginFile   int
	TargetFile   int
	FileDistance int
	OriginRank   int
	TargetRank   int
	RankDistance int
	Direction    Direction
}

// Geometry computes the MoveGeometry from origin to target.
func Geometry(origin, target Square) MoveGeometry {
	g := MoveGeometry{
		OriginFile: origin.File(),
		TargetFile: target.File(),
		OriginRank: origin.Rank(),
		TargetRank: target.Rank(),
	}
	g.FileDistance = abs(g.TargetFile - g.OriginFile)
	g.RankDistance = abs(g.TargetRank - g.OriginRank)
	g.Direction = DirectionOf(g.OriginFile, g.OriginRank, g.TargetFile, g.TargetRank)
	return g
}

// IsLine reports whether the move runs along a single rank or file.
func (g MoveGeometry) IsLine() bool {
	return g.Direction.IsStraight()
}

// IsDiagonal reports whether the move is an exact diagonal.
func (g MoveGeometry) IsDiagonal() bool {
	return g.Direction.IsDiagonal() && g.FileDistance == g.RankDistance
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
