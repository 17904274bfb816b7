package types

import "testing"

func TestNewCallContext(t *testing.T) {
	ctx := NewCallContext()

	if ctx.MaxDepth != DefaultMaxDepth {
		t.Errorf("Expected default depth limit of %d, got %d", DefaultMaxDepth, ctx.MaxDepth)
	}
	if ctx.Depth() != 0 {
		t.Errorf("Expected empty call stack, got depth %d", ctx.Depth())
	}
	if _, ok := ctx.Current(); ok {
		t.Error("Expected no current frame at top level")
	}
}

func TestPushPopFrame(t *testing.T) {
	ctx := NewCallContext()
	ctx.MaxDepth = 2

	if !ctx.PushFrame(Frame{Function: "main"}) {
		t.Fatal("Expected first push to succeed")
	}
	if !ctx.PushFrame(Frame{Function: "f", Pos: Position{Line: 3, Column: 5}}) {
		t.Fatal("Expected second push to succeed")
	}
	if ctx.PushFrame(Frame{Function: "g"}) {
		t.Error("Expected push beyond MaxDepth to fail")
	}

	cur, ok := ctx.Current()
	if !ok || cur.Function != "f" {
		t.Errorf("Expected current frame f, got %+v", cur)
	}

	tb := ctx.Traceback()
	if len(tb) != 2 || tb[0].Function != "f" || tb[1].Function != "main" {
		t.Errorf("Expected traceback [f main], got %+v", tb)
	}

	ctx.PopFrame()
	ctx.PopFrame()
	ctx.PopFrame() // extra pop is harmless
	if ctx.Depth() != 0 {
		t.Errorf("Expected depth 0 after pops, got %d", ctx.Depth())
	}
}

func TestUnlimitedDepth(t *testing.T) {
	ctx := &CallContext{}
	for i := 0; i < 5000; i++ {
		if !ctx.PushFrame(Frame{Function: "f"}) {
			t.Fatalf("push %d failed with unlimited depth", i)
		}
	}
}
