package vdom

import "testing"

func TestDiffBothEmpty(t *testing.T) {
	if p := Diff(nil, nil); p != nil {
		t.Errorf("Diff(nil, nil) = %v, want nil", p)
	}
	if p := Diff(false, nil); p != nil {
		t.Errorf("Diff(false, nil) = %v, want nil", p)
	}
}

func TestDiffCreate(t *testing.T) {
	next := New("div", nil)
	p := Diff(nil, next)
	if p == nil || p.Op != OpCreate {
		t.Fatalf("Diff(nil, node) = %v, want Create", p)
	}
	if _, ok := AsNode(p.Node); !ok {
		t.Error("Create patch should carry the new node")
	}
}

func TestDiffRemove(t *testing.T) {
	p := Diff(New("div", nil), nil)
	if p == nil || p.Op != OpRemove {
		t.Fatalf("Diff(node, nil) = %v, want Remove", p)
	}
}

func TestDiffIdenticalIsNoop(t *testing.T) {
	handler := func(any) {}
	v1 := New("div", Props{"id": "a", "onclick": handler, "style": Props{"color": "red"}}, "one", New("span", nil, "two"))
	v2 := New("div", Props{"id": "a", "onclick": handler, "style": Props{"color": "red"}}, "one", New("span", nil, "two"))
	if p := Diff(v1, v2); p != nil {
		t.Errorf("structurally equal trees should diff to nil, got %+v", p)
	}
}

func TestDiffTagChangeReplaces(t *testing.T) {
	v1 := New("div", Props{"id": "a"}, "x")
	v2 := New("pre", Props{"id": "a"}, "x")
	p := Diff(v1, v2)
	if p == nil || p.Op != OpReplace {
		t.Fatalf("tag change should Replace, got %v", p)
	}
}

func TestDiffTypeChangeReplaces(t *testing.T) {
	p := Diff("text", New("div", nil))
	if p == nil || p.Op != OpReplace {
		t.Fatalf("text→node should Replace, got %v", p)
	}
	p = Diff(1, "1")
	if p == nil || p.Op != OpReplace {
		t.Fatalf("number→string should Replace, got %v", p)
	}
}

func TestDiffTextValueChangeReplaces(t *testing.T) {
	p := Diff("a", "b")
	if p == nil || p.Op != OpReplace {
		t.Fatalf("text change should Replace, got %v", p)
	}
	if p.Node != "b" {
		t.Errorf("Node = %v, want b", p.Node)
	}
}

func TestDiffPropsDelta(t *testing.T) {
	v1 := New("div", Props{"id": "a", "class": "x"})
	v2 := New("div", Props{"id": "b", "class": "x"})
	p := Diff(v1, v2)
	if p == nil || p.Op != OpUpdate {
		t.Fatalf("props change should Update, got %v", p)
	}
	if p.PrevProps["id"] != "a" || p.NextProps["id"] != "b" {
		t.Error("Update should carry both prop mappings")
	}
	if len(p.Children) != 0 {
		t.Errorf("unchanged children should produce no child patches, got %d", len(p.Children))
	}
}

func TestDiffPropRemoved(t *testing.T) {
	p := Diff(New("div", Props{"id": "a"}), New("div", Props{}))
	if p == nil || p.Op != OpUpdate {
		t.Fatalf("prop removal should Update, got %v", p)
	}
}

func TestDiffStyleShallow(t *testing.T) {
	v1 := New("div", Props{"style": Props{"color": "red"}})
	same := New("div", Props{"style": Props{"color": "red"}})
	if p := Diff(v1, same); p != nil {
		t.Errorf("equal style maps should be a no-op, got %v", p)
	}
	changed := New("div", Props{"style": Props{"color": "blue"}})
	if p := Diff(v1, changed); p == nil || p.Op != OpUpdate {
		t.Errorf("style value change should Update, got %v", p)
	}
	grew := New("div", Props{"style": Props{"color": "red", "width": "2px"}})
	if p := Diff(v1, grew); p == nil || p.Op != OpUpdate {
		t.Errorf("style key addition should Update, got %v", p)
	}
}

func TestDiffHandlerIdentity(t *testing.T) {
	h1 := func(any) {}
	h2 := func(any) {}
	if p := Diff(New("b", Props{"onclick": h1}), New("b", Props{"onclick": h1})); p != nil {
		t.Errorf("same handler should be a no-op, got %v", p)
	}
	if p := Diff(New("b", Props{"onclick": h1}), New("b", Props{"onclick": h2})); p == nil {
		t.Error("different handlers should produce an Update")
	}
}

func TestDiffChildrenSparse(t *testing.T) {
	v1 := New("ul", nil, New("li", nil, "a"), New("li", nil, "b"), New("li", nil, "c"))
	v2 := New("ul", nil, New("li", nil, "a"), New("li", nil, "B"), New("li", nil, "c"))
	p := Diff(v1, v2)
	if p == nil || p.Op != OpUpdate {
		t.Fatalf("child change should Update, got %v", p)
	}
	if len(p.Children) != 1 {
		t.Fatalf("sparse delta should touch only the changed child, got %d entries", len(p.Children))
	}
	if p.Children[0].Index != 1 {
		t.Errorf("Index = %d, want 1", p.Children[0].Index)
	}
	if p.PrevProps != nil || p.NextProps != nil {
		t.Error("unchanged props should not appear in the patch")
	}
}

func TestDiffChildAppended(t *testing.T) {
	v1 := New("ul", nil, New("li", nil))
	v2 := New("ul", nil, New("li", nil), New("li", nil, "new"))
	p := Diff(v1, v2)
	if p == nil || len(p.Children) != 1 {
		t.Fatalf("append should produce one child patch, got %+v", p)
	}
	cp := p.Children[0]
	if cp.Index != 1 || cp.Patch.Op != OpCreate {
		t.Errorf("got index %d op %v, want 1 Create", cp.Index, cp.Patch.Op)
	}
}

func TestDiffChildTruncated(t *testing.T) {
	v1 := New("ul", nil, New("li", nil), New("li", nil))
	v2 := New("ul", nil, New("li", nil))
	p := Diff(v1, v2)
	if p == nil || len(p.Children) != 1 {
		t.Fatalf("truncation should produce one child patch, got %+v", p)
	}
	cp := p.Children[0]
	if cp.Index != 1 || cp.Patch.Op != OpRemove {
		t.Errorf("got index %d op %v, want 1 Remove", cp.Index, cp.Patch.Op)
	}
}

func TestDiffEmptySlotTransitions(t *testing.T) {
	// Slot goes empty → non-empty: Replace, never Create, so indices stay aligned.
	v1 := New("div", nil, nil, New("span", nil))
	v2 := New("div", nil, New("b", nil), New("span", nil))
	p := Diff(v1, v2)
	if p == nil || len(p.Children) != 1 {
		t.Fatalf("want one child patch, got %+v", p)
	}
	if p.Children[0].Patch.Op != OpReplace {
		t.Errorf("empty→node should Replace, got %v", p.Children[0].Patch.Op)
	}

	// Non-empty → empty: also Replace (with the empty value).
	p = Diff(v2, v1)
	if p == nil || len(p.Children) != 1 || p.Children[0].Patch.Op != OpReplace {
		t.Fatalf("node→empty should Replace, got %+v", p)
	}

	// Empty → empty in the same slot is skipped entirely.
	v3 := New("div", nil, false, New("span", nil))
	if p := Diff(v1, v3); p != nil {
		t.Errorf("empty→empty should be a no-op, got %+v", p)
	}
}

func TestDiffRecursesIntoChildren(t *testing.T) {
	v1 := New("div", nil, New("section", nil, New("p", nil, "old")))
	v2 := New("div", nil, New("section", nil, New("p", nil, "new")))
	p := Diff(v1, v2)
	if p == nil || p.Op != OpUpdate {
		t.Fatalf("want Update, got %v", p)
	}
	inner := p.Children[0].Patch
	if inner.Op != OpUpdate {
		t.Fatalf("section patch = %v, want Update", inner.Op)
	}
	leaf := inner.Children[0].Patch
	if leaf.Op != OpUpdate || leaf.Children[0].Patch.Op != OpReplace {
		t.Errorf("text change should surface as Replace at the leaf, got %+v", leaf)
	}
}

func TestPatchOpString(t *testing.T) {
	tests := []struct {
		op   PatchOp
		want string
	}{
		{OpCreate, "Create"},
		{OpRemove, "Remove"},
		{OpReplace, "Replace"},
		{OpUpdate, "Update"},
		{PatchOp(0xFF), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.op, got, tt.want)
		}
	}
}
