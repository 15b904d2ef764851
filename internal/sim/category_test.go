package sim

import "testing"

func TestCategoryMatrixAllowList(t *testing.T) {
	m := NewCategoryMatrix()

	allowed := []struct{ a, b Category }{
		{CategoryBall, CategoryPaddle},
		{CategoryBall, CategoryBrick},
		{CategoryBall, CategoryBoundary},
		{CategoryBall, CategoryDeathZone},
		{CategoryPaddle, CategoryPowerUp},
		{CategoryPaddle, CategoryBoundary},
		{CategoryPowerUp, CategoryBoundary},
	}

	inAllowList := func(a, b Category) bool {
		for _, p := range allowed {
			if (p.a == a && p.b == b) || (p.a == b && p.b == a) {
				return true
			}
		}
		return false
	}

	categories := []Category{
		CategoryBall, CategoryPaddle, CategoryBrick,
		CategoryBoundary, CategoryDeathZone, CategoryPowerUp,
	}

	// Every pair, both orders, must match the allow list exactly.
	for _, a := range categories {
		for _, b := range categories {
			want := inAllowList(a, b)
			if got := m.Allowed(a, b); got != want {
				t.Errorf("Allowed(%v, %v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestCategoryMatrixSymmetry(t *testing.T) {
	m := NewCategoryMatrix()

	categories := []Category{
		CategoryBall, CategoryPaddle, CategoryBrick,
		CategoryBoundary, CategoryDeathZone, CategoryPowerUp,
	}

	for _, a := range categories {
		for _, b := range categories {
			if m.Allowed(a, b) != m.Allowed(b, a) {
				t.Errorf("matrix asymmetric for (%v, %v)", a, b)
			}
		}
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryBall.String() == "" || CategoryDeathZone.String() == "" {
		t.Error("categories should have readable names")
	}
}
