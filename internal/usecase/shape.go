package usecase

// Action names the operation a request performs on a resource.
type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
)

// Shape is the response layout used for a resource.
type Shape int

const (
	ShapeWrite Shape = iota
	ShapeList
	ShapeDetail
)

func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeDetail:
		return "detail"
	default:
		return "write"
	}
}

// ShapeFor picks the response shape from the action alone: list and
// retrieve get their own shapes, everything else gets the write shape.
func ShapeFor(action Action) Shape {
	switch action {
	case ActionList:
		return ShapeList
	case ActionRetrieve:
		return ShapeDetail
	default:
		return ShapeWrite
	}
}
