package game

import (
	"testing"

	"github.com/ndemidov/brickwave/internal/sim"
)

func TestParseLevel(t *testing.T) {
	level := ParseLevel("test", "Test", []string{
		"#5.",
		"HXP",
	})

	if level.Width != 3 || level.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", level.Width, level.Height)
	}

	tests := []struct {
		row, col   int
		wantType   sim.BrickType
		wantHP     int
		wantPoints int
		wantEmpty  bool
	}{
		{0, 0, sim.BrickNormal, 1, 10, false},
		{0, 1, sim.BrickNormal, 1, 50, false},
		{0, 2, 0, 0, 0, true},
		{1, 0, sim.BrickReinforced, 2, 20, false},
		{1, 1, sim.BrickIndestructible, 1, 0, false},
		{1, 2, sim.BrickPowerUp, 1, 30, false},
	}

	for _, tt := range tests {
		spec := level.grid[tt.row][tt.col]
		if spec.Empty != tt.wantEmpty {
			t.Errorf("(%d,%d) empty = %v, want %v", tt.row, tt.col, spec.Empty, tt.wantEmpty)
			continue
		}
		if tt.wantEmpty {
			continue
		}
		if spec.Type != tt.wantType || spec.HP != tt.wantHP || spec.Points != tt.wantPoints {
			t.Errorf("(%d,%d) = {%v %d %d}, want {%v %d %d}",
				tt.row, tt.col, spec.Type, spec.HP, spec.Points,
				tt.wantType, tt.wantHP, tt.wantPoints)
		}
	}
}

func TestParseLevelRaggedLines(t *testing.T) {
	level := ParseLevel("test", "Test", []string{
		"####",
		"#",
	})

	if level.Width != 4 {
		t.Fatalf("width = %d, want 4", level.Width)
	}
	// Short lines are padded with empty cells.
	for col := 1; col < 4; col++ {
		if !level.grid[1][col].Empty {
			t.Errorf("(1,%d) should be empty padding", col)
		}
	}
}

func TestLevelBricksGeometry(t *testing.T) {
	level := ParseLevel("test", "Test", []string{
		"#.#",
	})

	bricks := level.Bricks(1, 3, 4, 1)
	if len(bricks) != 2 {
		t.Fatalf("got %d bricks, want 2", len(bricks))
	}

	first := bricks[0].Bounds
	if first.Min.X != 1 || first.Min.Y != 3 || first.Width() != 4 || first.Height() != 1 {
		t.Errorf("first brick bounds = %+v", first)
	}

	second := bricks[1].Bounds
	if second.Min.X != 9 { // Column 2 at origin 1 with width 4
		t.Errorf("second brick Min.X = %g, want 9", second.Min.X)
	}
}

func TestBuiltinLevels(t *testing.T) {
	if LevelCount() == 0 {
		t.Fatal("no built-in levels")
	}

	for i := 0; i < LevelCount(); i++ {
		level := GetLevel(i)
		if level.ID == "" || level.Name == "" {
			t.Errorf("level %d missing metadata", i)
		}

		// Every level must be clearable: at least one destructible brick.
		bricks := level.Bricks(0, 0, 1, 1)
		destructible := 0
		for _, b := range bricks {
			if b.Type != sim.BrickIndestructible {
				destructible++
			}
		}
		if destructible == 0 {
			t.Errorf("level %q has no destructible bricks", level.ID)
		}
	}
}

func TestGetLevelOutOfRange(t *testing.T) {
	if GetLevel(-1) != GetLevel(0) {
		t.Error("negative index should fall back to the first level")
	}
	if GetLevel(999) != GetLevel(0) {
		t.Error("overflow index should fall back to the first level")
	}
}
