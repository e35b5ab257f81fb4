package gfx

import (
	"testing"

	"github.com/braticpetar/gloom/internal/platform"
)

func TestConvert_MapsPlatformEvents(t *testing.T) {
	cases := []struct {
		name string
		in   platform.Event
		want Event
	}{
		{"expose", platform.Expose{}, Expose{}},
		{"key press", platform.KeyPress{Code: 9, Label: "Escape"}, KeyPress{Code: 9, Label: "Escape"}},
		{"key release", platform.KeyRelease{Code: 9, Label: "Escape"}, KeyRelease{Code: 9, Label: "Escape"}},
		{"button press", platform.ButtonPress{Button: 1, X: 3, Y: 4}, ButtonPress{Button: 1, X: 3, Y: 4}},
		{"button release", platform.ButtonRelease{Button: 1, X: 3, Y: 4}, ButtonRelease{Button: 1, X: 3, Y: 4}},
		{"motion", platform.MotionNotify{X: 7, Y: 8}, MotionNotify{X: 7, Y: 8}},
		{"enter", platform.EnterNotify{}, EnterNotify{}},
		{"leave", platform.LeaveNotify{}, LeaveNotify{}},
		{"destroy", platform.DestroyNotify{}, DestroyNotify{}},
		{"wheel", platform.MouseWheel{DeltaX: -1, DeltaY: 2, X: 5, Y: 6}, MouseWheel{DeltaX: -1, DeltaY: 2, X: 5, Y: 6}},
		{"unexpected", platform.UnexpectedEvent{}, UnexpectedEvent{}},
	}

	for _, tc := range cases {
		if got := convert(tc.in); got != tc.want {
			t.Errorf("%s: want %#v, got %#v", tc.name, tc.want, got)
		}
	}
}
