package tui

import "testing"

func TestKeyRegistryLookupByScope(t *testing.T) {
	r := NewKeyRegistry()

	pay := r.Lookup("p", scopeExpenses)
	if pay == nil || pay.Action != actionPay {
		t.Fatalf("expected pay binding in expenses scope, got %+v", pay)
	}
	if got := r.Lookup("p", scopeDashboard); got != nil {
		t.Fatalf("did not expect pay binding in dashboard scope, got %q", got.Action)
	}

	quit := r.Lookup("ctrl+c", scopeConfirm)
	if quit == nil || quit.Action != actionQuit {
		t.Fatalf("expected ctrl+c to fall back to the global quit binding, got %+v", quit)
	}
}

func TestKeyRegistryUppercaseIsDistinct(t *testing.T) {
	r := NewKeyRegistry()

	if b := r.Lookup("L", scopeDashboard); b == nil || b.Action != actionLogout {
		t.Fatalf("L = %+v, want logout", b)
	}
	if b := r.Lookup("l", scopeDashboard); b == nil || b.Action != actionNextMonth {
		t.Fatalf("l = %+v, want next month", b)
	}
	if b := r.Lookup("K", scopeExpenses); b == nil || b.Action != actionMoveUp {
		t.Fatalf("K = %+v, want move up", b)
	}
}

func TestKeyRegistryNoDuplicateInSameScope(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}

	r.Register(Binding{Action: actionNew, Keys: []string{"x"}, Help: "first", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionEdit, Keys: []string{"x"}, Help: "duplicate", Scopes: []string{"scope_a"}})
	r.Register(Binding{Action: actionEdit, Keys: []string{"x"}, Help: "different scope", Scopes: []string{"scope_b"}})

	a := r.BindingsForScope("scope_a")
	if len(a) != 1 || a[0].Action != actionNew {
		t.Fatalf("scope_a bindings = %+v, want only %q", a, actionNew)
	}
	b := r.BindingsForScope("scope_b")
	if len(b) != 1 || b[0].Action != actionEdit {
		t.Fatalf("scope_b bindings = %+v, want only %q", b, actionEdit)
	}
}

func TestKeyRegistryNormalizesNames(t *testing.T) {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
	r.Register(Binding{Action: actionSubmit, Keys: []string{"Return", " ", "Control+S"}, Scopes: []string{"s"}})

	for _, k := range []string{"enter", "space", "ctrl+s"} {
		if b := r.Lookup(k, "s"); b == nil {
			t.Fatalf("lookup %q: no binding", k)
		}
	}
}

func TestHelpBindingsUseFirstKeyAsLabel(t *testing.T) {
	r := NewKeyRegistry()
	hb := r.HelpBindings(scopeConfirm)
	if len(hb) != 2 {
		t.Fatalf("confirm help bindings = %d, want 2", len(hb))
	}
	if got := hb[1].Help().Key; got != "n" {
		t.Fatalf("cancel label = %q, want %q", got, "n")
	}
	if !hb[1].Enabled() {
		t.Fatal("help binding should be enabled")
	}
}
