package sim

// Category tags the kinds of objects that can participate in a collision.
type Category uint8

const (
	CategoryBall Category = iota
	CategoryPaddle
	CategoryBrick
	CategoryBoundary
	CategoryDeathZone
	CategoryPowerUp
	categoryCount // Sentinel for matrix sizing
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryBall:
		return "Ball"
	case CategoryPaddle:
		return "Paddle"
	case CategoryBrick:
		return "Brick"
	case CategoryBoundary:
		return "Boundary"
	case CategoryDeathZone:
		return "DeathZone"
	case CategoryPowerUp:
		return "PowerUp"
	default:
		return "Unknown"
	}
}

// CategoryMatrix is the static allow-list of category pairs that may
// interact. It replaces engine-level collision layer settings with an
// explicit, testable lookup. Pairs outside the allow-list are silently
// dropped by the router; that is not an error condition.
type CategoryMatrix struct {
	allowed [categoryCount][categoryCount]bool
}

// NewCategoryMatrix builds the matrix with the standard allow-list:
// Ball<->Paddle, Ball<->Brick, Ball<->Boundary, Ball<->DeathZone,
// Paddle<->PowerUp, Paddle<->Boundary, PowerUp<->Boundary.
func NewCategoryMatrix() *CategoryMatrix {
	m := &CategoryMatrix{}
	m.allow(CategoryBall, CategoryPaddle)
	m.allow(CategoryBall, CategoryBrick)
	m.allow(CategoryBall, CategoryBoundary)
	m.allow(CategoryBall, CategoryDeathZone)
	m.allow(CategoryPaddle, CategoryPowerUp)
	m.allow(CategoryPaddle, CategoryBoundary)
	m.allow(CategoryPowerUp, CategoryBoundary)
	return m
}

// allow marks a pair as interacting, in both orders.
func (m *CategoryMatrix) allow(a, b Category) {
	m.allowed[a][b] = true
	m.allowed[b][a] = true
}

// Allowed reports whether the two categories may interact.
// The lookup is symmetric and has no side effects.
func (m *CategoryMatrix) Allowed(a, b Category) bool {
	if a >= categoryCount || b >= categoryCount {
		return false
	}
	return m.allowed[a][b]
}
