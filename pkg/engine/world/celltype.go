package world

// CellType tags a board cell. Behaviour dispatches on the tag.
type CellType int

// Cell types
const (
	Empty CellType = iota
	Normal
	Positive
	Negative
)

// Labels used for each cell type in map descriptions
const (
	LabelEmpty    = "NullCell"
	LabelNormal   = "NormalCell"
	LabelPositive = "PosiCell"
	LabelNegative = "NegaCell"
)

// AllCellTypes returns all cell types for iteration
func AllCellTypes() []CellType {
	return []CellType{Empty, Normal, Positive, Negative}
}

// ParseCellType maps a description label to its cell type.
func ParseCellType(label string) (CellType, bool) {
	switch label {
	case LabelEmpty:
		return Empty, true
	case LabelNormal:
		return Normal, true
	case LabelPositive:
		return Positive, true
	case LabelNegative:
		return Negative, true
	default:
		return Empty, false
	}
}

// Label returns the description label for the cell type
func (t CellType) Label() string {
	switch t {
	case Empty:
		return LabelEmpty
	case Normal:
		return LabelNormal
	case Positive:
		return LabelPositive
	case Negative:
		return LabelNegative
	default:
		return "Unknown"
	}
}

func (t CellType) String() string {
	return t.Label()
}

// IsValid returns true for the four known cell types
func (t CellType) IsValid() bool {
	return t >= Empty && t <= Negative
}

// IsEmpty reports whether the cell is a hole in the board.
// Empty cells never carry edges.
func (t CellType) IsEmpty() bool {
	return t == Empty
}
