package module

import (
	"strings"
	"testing"

	"sentilex/internal/platform/testkit"

	phttp "sentilex/internal/platform/net/http"
)

type recorderPort interface{ Record(text string) string }

type recorder struct{ prefix string }

func (r recorder) Record(text string) string { return r.prefix + text }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Prefix() string           { return "" }
func (m fakeModule) MountRoutes(phttp.Router) {}
func (m fakeModule) Ports() any               { return m.ports }

func TestPortsOf(t *testing.T) {
	type bundle struct {
		Size     int
		Recorder recorderPort
	}
	type hidden struct {
		rec recorderPort
	}

	tests := []struct {
		name  string
		ports any
		want  string
		found bool
	}{
		{"nil ports", nil, "", false},
		{"direct", recorderPort(recorder{"d:"}), "d:bom", true},
		{"exported field", bundle{Size: 50, Recorder: recorder{"f:"}}, "f:bom", true},
		{"unexported field", hidden{rec: recorder{"h:"}}, "", false},
		{"not a struct", 50, "", false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[recorderPort](fakeModule{name: "history", ports: tc.ports})
			if ok != tc.found {
				t.Fatalf("found = %v, want %v", ok, tc.found)
			}
			if ok && got.Record("bom") != tc.want {
				t.Fatalf("Record = %q, want %q", got.Record("bom"), tc.want)
			}
		})
	}
}

func TestMustPortsOf(t *testing.T) {
	m := fakeModule{name: "history", ports: struct{ Recorder recorderPort }{recorder{""}}}
	if got := MustPortsOf[recorderPort](m).Record("ruim"); got != "ruim" {
		t.Fatalf("Record = %q", got)
	}

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "archive") || !strings.Contains(msg, "recorderPort") {
			t.Fatalf("panic message %q should name the module and the port", msg)
		}
	}()
	_ = MustPortsOf[recorderPort](fakeModule{name: "archive"})
}

func TestRegistry(t *testing.T) {
	testkit.Serial(t)
	Reset()
	t.Cleanup(Reset)

	Register("meta", nil)
	Register("history", 1)
	Register("analyze", 2)
	Register("history", 3)

	got := Names()
	want := []string{"analyze", "history", "meta"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Names = %v, want %v", got, want)
	}

	Reset()
	if n := Names(); len(n) != 0 {
		t.Fatalf("Names after Reset = %v", n)
	}
}
