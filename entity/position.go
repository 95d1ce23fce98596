package entity

// Position is an entity's world-space location, stored as an ECS component.
// Behavior components mutate it additively; there is no owner beyond the
// entity itself.
type Position struct {
	X, Y float64
}
