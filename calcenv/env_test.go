package calcenv

import "testing"

func TestAssignAndResolveInGlobalScope(t *testing.T) {
	env := New()
	env.Assign("x", 42)

	b, ok := env.Resolve("x")
	if !ok {
		t.Fatalf("expected x to resolve")
	}
	if b.Value != 42 {
		t.Fatalf("got %g, want 42", b.Value)
	}
}

func TestResolveUndefinedFails(t *testing.T) {
	env := New()
	if _, ok := env.Resolve("y"); ok {
		t.Fatalf("y should not resolve in a fresh environment")
	}
}

func TestNestedScopeShadowsGlobal(t *testing.T) {
	env := New()
	env.Assign("x", 1)
	env.PushScope("block")
	env.Assign("x", 2)

	b, ok := env.Resolve("x")
	if !ok || b.Value != 2 {
		t.Fatalf("inner scope should shadow outer x, got %v ok=%v", b, ok)
	}

	env.PopScope()
	b, ok = env.Resolve("x")
	if !ok || b.Value != 1 {
		t.Fatalf("after popping, outer x should resolve again, got %v ok=%v", b, ok)
	}
}

func TestPopGlobalScopePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic when popping the global scope")
		}
	}()
	New().PopScope()
}

func TestReassignOverwritesSameScopeBinding(t *testing.T) {
	env := New()
	env.Assign("x", 1)
	env.Assign("x", 2)

	b, ok := env.Resolve("x")
	if !ok || b.Value != 2 {
		t.Fatalf("reassignment should overwrite, got %v ok=%v", b, ok)
	}
}
