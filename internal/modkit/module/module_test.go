package module

import (
	"testing"

	phttp "figurefriday/internal/platform/net/http"
)

type stubModule struct {
	name    string
	mounted int
	ports   any
}

func (s *stubModule) MountRoutes(phttp.Router) { s.mounted++ }
func (s *stubModule) Ports() any               { return s.ports }
func (s *stubModule) Name() string             { return s.name }

var _ Module = (*stubModule)(nil)

func TestModule_RegisterPortsByName(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	mods := []Module{
		&stubModule{name: "survey", ports: "survey-port"},
		&stubModule{name: "meta"},
	}
	for _, m := range mods {
		Register(m.Name(), m.Ports())
		m.MountRoutes(nil)
	}

	got, ok := PortsAs[string]("survey")
	if !ok || got != "survey-port" {
		t.Fatalf("survey ports = %q %v", got, ok)
	}
	if _, ok := PortsAs[string]("meta"); ok {
		t.Fatal("nil ports should not assert to string")
	}
	if mods[0].(*stubModule).mounted != 1 {
		t.Fatal("MountRoutes not called")
	}
}
