package main

import "testing"

func TestEnvGetPut(t *testing.T) {
	env := NewEnv()
	env.Put("x", Integer(1))
	shouldEqual(t, env.Get("x"), Integer(1))

	env.Put("x", Integer(2))
	shouldEqual(t, env.Get("x"), Integer(2))
	if env.Len() != 1 {
		t.Errorf("Expected 1 binding, got %d", env.Len())
	}

	shouldEqual(t, env.Get("y"), Error("Unbound symbol 'y'"))
}

func TestEnvEnclosed(t *testing.T) {
	global := NewEnv()
	global.Put("x", Integer(1))
	global.Put("y", Integer(2))

	local := NewEnclosedEnv(global)
	local.Put("x", Integer(10))

	shouldEqual(t, local.Get("x"), Integer(10))
	shouldEqual(t, local.Get("y"), Integer(2))
	shouldEqual(t, global.Get("x"), Integer(1))

	if local.Parent() != global {
		t.Error("Expected parent to be the global frame")
	}
	if local.Root() != global || global.Root() != global {
		t.Error("Expected root to be the global frame")
	}
}

func TestEnvPutGlobal(t *testing.T) {
	global := NewEnv()
	inner := NewEnclosedEnv(NewEnclosedEnv(global))
	inner.PutGlobal("z", Str("zed"))

	shouldEqual(t, global.Get("z"), Str("zed"))
	if inner.Len() != 0 {
		t.Errorf("Expected no local bindings, got %d", inner.Len())
	}
}

func TestEnvCopyFrame(t *testing.T) {
	global := NewEnv()
	global.Put("g", Integer(0))
	frame := NewEnclosedEnv(global)
	frame.Put("a", Integer(1))

	cp := frame.copyFrame()
	cp.Put("a", Integer(2))
	cp.Put("b", Integer(3))

	shouldEqual(t, frame.Get("a"), Integer(1))
	shouldEqual(t, frame.Get("b"), Error("Unbound symbol 'b'"))
	shouldEqual(t, cp.Get("a"), Integer(2))
	shouldEqual(t, cp.Get("g"), Integer(0))
	if cp.Parent() != global {
		t.Error("Expected copied frame to share the parent")
	}
}
