package vdom

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	OpCreate  PatchOp = 0x01 // Mount a new subtree at an index
	OpRemove  PatchOp = 0x02 // Remove the subtree at an index
	OpReplace PatchOp = 0x03 // Replace the subtree at an index
	OpUpdate  PatchOp = 0x04 // Update props and patch children in place
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case OpCreate:
		return "Create"
	case OpRemove:
		return "Remove"
	case OpReplace:
		return "Replace"
	case OpUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// ChildPatch pairs a child index with the patch for that child. Indices are
// DOM child positions (vnode position 2 is child index 0).
type ChildPatch struct {
	Index int
	Patch *Patch
}

// Patch is a single transient instruction produced by Diff and consumed once
// by the patch applier.
type Patch struct {
	Op PatchOp

	// Node is the new tree value for Create and Replace.
	Node any

	// PrevProps and NextProps carry the props delta for Update. Both are nil
	// when the props did not change.
	PrevProps Props
	NextProps Props

	// Children is the sparse child delta for Update; untouched children do
	// not appear.
	Children []ChildPatch
}
