package envelope

import (
	"net/url"
	"reflect"
	"testing"
)

func TestZeroStateIsClosed(t *testing.T) {
	t.Parallel()

	view := State{}.View()
	if view.FlapDegrees != 0 || view.LiftPX != 0 || view.ModalVisible || len(view.Hearts) != 0 {
		t.Fatalf("closed view = %+v", view)
	}
}

func TestOpenView(t *testing.T) {
	t.Parallel()

	view := State{}.Open().View()
	if view.FlapDegrees != 160 {
		t.Fatalf("FlapDegrees = %d, want 160", view.FlapDegrees)
	}
	if view.LiftPX != -4 {
		t.Fatalf("LiftPX = %d, want -4", view.LiftPX)
	}
	if !view.ModalVisible {
		t.Fatal("expected modal to be visible")
	}
	if len(view.Hearts) != 3 {
		t.Fatalf("hearts = %d, want 3", len(view.Hearts))
	}
}

func TestOpenThenCloseRestoresClosedPresentation(t *testing.T) {
	t.Parallel()

	initial := State{}
	closed := initial.Open().Close()
	if !reflect.DeepEqual(closed.View(), initial.View()) {
		t.Fatalf("view after open/close = %+v, want %+v", closed.View(), initial.View())
	}
	if toggled := initial.Toggle().Toggle(); toggled != initial {
		t.Fatalf("toggle twice = %+v, want %+v", toggled, initial)
	}
}

func TestFromQuery(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"":          false,
		"open=1":    true,
		"open=on":   false,
		"open=0":    false,
		"open=TRUE": true,
	}
	for raw, want := range cases {
		values, err := url.ParseQuery(raw)
		if err != nil {
			t.Fatalf("ParseQuery(%q) error = %v", raw, err)
		}
		if got := FromQuery(values).IsOpen(); got != want {
			t.Fatalf("FromQuery(%q) open = %t, want %t", raw, got, want)
		}
	}
}

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	if got := (State{}).Query(); got != "" {
		t.Fatalf("closed Query() = %q, want empty", got)
	}
	open := State{}.Open()
	values, err := url.ParseQuery(open.Query())
	if err != nil {
		t.Fatalf("ParseQuery() error = %v", err)
	}
	if !FromQuery(values).IsOpen() {
		t.Fatalf("Query() = %q does not reopen", open.Query())
	}
}

func TestViewHeartsAreCopies(t *testing.T) {
	t.Parallel()

	view := State{}.Open().View()
	view.Hearts[0].OffsetX = "changed"
	if again := (State{}).Open().View(); again.Hearts[0].OffsetX != "-60%" {
		t.Fatalf("hearts mutated: %+v", again.Hearts)
	}
}
