package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/asteroids-arcade/internal/physics"
)

func newTestCanvas() *Canvas {
	// 10x5 terminal cells = 10x10 sub-pixels, mapped from a 100x100 logical space.
	return NewScaledCanvas(10, 5, 100, 100)
}

func TestCanvasScaling(t *testing.T) {
	c := newTestCanvas()
	c.Set(physics.V(50, 50), ColorWhite)

	if got := c.pixels[5*c.termWidth+5]; got != ColorWhite {
		t.Fatalf("pixel (5,5) = %v, want white", got)
	}
	if col, row := c.LogicalToTerminal(physics.V(50, 50)); col != 6 || row != 3 {
		t.Fatalf("LogicalToTerminal = (%d,%d), want (6,3)", col, row)
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := newTestCanvas()
	c.Set(physics.V(-50, 20), ColorWhite)
	c.Set(physics.V(500, 20), ColorWhite)
	for i, p := range c.pixels {
		if p != ColorNone {
			t.Fatalf("pixel %d set by an off-canvas point", i)
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := newTestCanvas()
	c.DrawLine(physics.V(0, 0), physics.V(90, 90), ColorGray)

	for i := 0; i <= 9; i++ {
		if c.pixels[i*c.termWidth+i] != ColorGray {
			t.Fatalf("diagonal pixel %d not set", i)
		}
	}
}

func TestFilledPolygon(t *testing.T) {
	c := newTestCanvas()
	square := []physics.Vec2{physics.V(20, 20), physics.V(80, 20), physics.V(80, 80), physics.V(20, 80)}
	c.DrawPolygon(square, true, ColorOrange)

	if c.pixels[5*c.termWidth+5] != ColorOrange {
		t.Fatalf("interior pixel not filled")
	}
	if c.pixels[0] != ColorNone {
		t.Fatalf("exterior pixel filled")
	}
}

func TestRenderOnlyChangedCells(t *testing.T) {
	c := newTestCanvas()
	c.Set(physics.V(0, 0), ColorWhite)

	var first bytes.Buffer
	if err := c.Render(&first); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(first.String(), string(BlockUpperHalf)) {
		t.Fatalf("first render missing the set pixel")
	}

	var second bytes.Buffer
	if err := c.Render(&second); err != nil {
		t.Fatal(err)
	}
	if second.Len() != 0 {
		t.Fatalf("unchanged canvas rendered %q", second.String())
	}

	c.Clear()
	var third bytes.Buffer
	if err := c.Render(&third); err != nil {
		t.Fatal(err)
	}
	if want := "\033[1;1H "; third.String() != want {
		t.Fatalf("cleared pixel rendered %q, want %q", third.String(), want)
	}
}

func TestMarkTextDirtyRepaints(t *testing.T) {
	c := newTestCanvas()
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}

	c.MarkTextDirty(3, 2, 2)
	buf.Reset()
	if err := c.Render(&buf); err != nil {
		t.Fatal(err)
	}
	if want := "\033[2;3H \033[2;4H "; buf.String() != want {
		t.Fatalf("render = %q, want %q", buf.String(), want)
	}
}

func TestChunkWriterOffset(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 4, 2)
	cw.WriteAt(1, 1, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := "\033[3;5Hhi"; out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestChunkWriterLargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	payload := strings.Repeat("x", 3*maxChunkSize+7)
	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != payload {
		t.Fatalf("flushed %d bytes, want %d", out.Len(), len(payload))
	}
}
