package input

import (
	"testing"

	"snake-grid/game/types"
)

func TestTurn(t *testing.T) {
	cases := []struct {
		name    string
		current types.Direction
		key     Key
		want    types.Direction
	}{
		{"first input left", types.None, KeyLeft, types.Left},
		{"first input down", types.None, KeyDown, types.Down},
		{"right then up", types.Right, KeyUp, types.Up},
		{"right then down", types.Right, KeyDown, types.Down},
		{"reverse right to left ignored", types.Right, KeyLeft, types.Right},
		{"same axis right ignored", types.Right, KeyRight, types.Right},
		{"reverse up to down ignored", types.Up, KeyDown, types.Up},
		{"up then left", types.Up, KeyLeft, types.Left},
		{"reverse left to right ignored", types.Left, KeyRight, types.Left},
		{"reverse down to up ignored", types.Down, KeyUp, types.Down},
		{"non arrow ignored", types.Down, KeyNone, types.Down},
	}
	for _, c := range cases {
		if got := Turn(c.current, c.key); got != c.want {
			t.Fatalf("%s: Turn(%v,%v)=%v want=%v", c.name, c.current, c.key, got, c.want)
		}
	}
}

func TestIsArrow(t *testing.T) {
	for _, k := range []Key{KeyLeft, KeyRight, KeyUp, KeyDown} {
		if !k.IsArrow() {
			t.Fatalf("%v not an arrow", k)
		}
	}
	if KeyNone.IsArrow() || Key(99).IsArrow() {
		t.Fatalf("non arrow key reported as arrow")
	}
}
