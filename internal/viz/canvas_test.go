package viz

import (
	"strings"
	"testing"
)

func TestSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2800|0x1 {
		t.Errorf("cell = %x, want %x", c.Grid[0][0], 0x2800|0x1)
	}

	c.Set(1, 0)
	if c.Grid[0][0] != 0x2800|0x1|0x8 {
		t.Errorf("cell = %x after second dot, want %x", c.Grid[0][0], 0x2800|0x1|0x8)
	}

	// (5, 7) lands in cell (2, 1), bottom-right dot.
	c.Set(5, 7)
	if c.Grid[1][2] != 0x2800|0x80 {
		t.Errorf("cell = %x, want %x", c.Grid[1][2], 0x2800|0x80)
	}
}

func TestSetOutOfBounds(t *testing.T) {
	c := NewCanvas(2, 2)

	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(4, 0)
	c.Set(0, 8)

	for i, row := range c.Grid {
		for j, cell := range row {
			if cell != 0x2800 {
				t.Errorf("cell (%d, %d) = %x, want empty", i, j, cell)
			}
		}
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawLine(0, 0, 7, 15)
	c.Clear()

	for i, row := range c.Grid {
		for j, cell := range row {
			if cell != 0x2800 {
				t.Errorf("cell (%d, %d) = %x after clear, want empty", i, j, cell)
			}
		}
	}
}

func countLit(c *Canvas) int {
	n := 0
	for _, row := range c.Grid {
		for _, cell := range row {
			if cell != 0x2800 {
				n++
			}
		}
	}
	return n
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 0)

	// A horizontal line across the top lights the whole first row.
	for j := 0; j < 10; j++ {
		if c.Grid[0][j] == 0x2800 {
			t.Errorf("cell (0, %d) not lit by horizontal line", j)
		}
	}
}

func TestDrawCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 8)

	if countLit(c) == 0 {
		t.Fatal("circle outline lit no cells")
	}

	// The center stays dark for an outline.
	centerCell := c.Grid[20/4][20/2]
	if centerCell != 0x2800 {
		t.Error("circle outline lit its center")
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillCircle(20, 20, 8)

	if c.Grid[20/4][20/2] == 0x2800 {
		t.Error("filled circle left its center dark")
	}
}

func TestFillCircleDegenerateRadius(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillCircle(3, 3, 0)

	if countLit(c) != 1 {
		t.Errorf("zero radius lit %d cells, want 1", countLit(c))
	}
}

func TestString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		if got := len([]rune(line)); got != 3 {
			t.Errorf("line %d has %d runes, want 3", i, got)
		}
	}
}
