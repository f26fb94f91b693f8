package scene

import "testing"

func TestAddRemove(t *testing.T) {
	root := NewContainer("root")
	a := NewSprite("a", 2, Color{255, 0, 0})
	b := NewSprite("b", 2, Color{0, 255, 0})
	c := NewSprite("c", 2, Color{0, 0, 255})
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	if len(root.Children()) != 3 {
		t.Fatalf("child count = %d, want 3", len(root.Children()))
	}
	b.Remove()
	if len(root.Children()) != 2 {
		t.Fatalf("child count after remove = %d, want 2", len(root.Children()))
	}
	// Draw order of the survivors must be preserved.
	if root.Children()[0] != a || root.Children()[1] != c {
		t.Errorf("sibling order not preserved after remove")
	}
	if b.Parent() != nil {
		t.Errorf("removed node still has a parent")
	}
	b.Remove() // second remove is a no-op
}

func TestReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	s := NewSprite("s", 1, Color{})
	p1.AddChild(s)
	p2.AddChild(s)
	if len(p1.Children()) != 0 {
		t.Errorf("node left behind in old parent")
	}
	if s.Parent() != p2 {
		t.Errorf("node not attached to new parent")
	}
}

func TestWalkInheritsOffsetAndAlpha(t *testing.T) {
	root := NewContainer("root")
	root.X, root.Y = 10, 20
	root.Alpha = 0.5

	child := NewContainer("child")
	child.X, child.Y = 1, 2
	child.Alpha = 0.5
	root.AddChild(child)

	leaf := NewSprite("leaf", 3, Color{})
	leaf.X, leaf.Y = 0.5, 0.25
	leaf.Alpha = 0.5
	root.AddChild(leaf)
	leaf.Remove()
	child.AddChild(leaf)

	var gotX, gotY, gotA float64
	root.Walk(func(n *Node, wx, wy, a float64) {
		if n == leaf {
			gotX, gotY, gotA = wx, wy, a
		}
	})
	if gotX != 11.5 || gotY != 22.25 {
		t.Errorf("leaf world pos = (%v,%v), want (11.5,22.25)", gotX, gotY)
	}
	if gotA != 0.125 {
		t.Errorf("leaf effective alpha = %v, want 0.125", gotA)
	}
}

func TestWalkSkipsInvisible(t *testing.T) {
	root := NewContainer("root")
	hidden := NewContainer("hidden")
	hidden.Visible = false
	root.AddChild(hidden)
	inner := NewSprite("inner", 1, Color{})
	hidden.AddChild(inner)
	shown := NewSprite("shown", 1, Color{})
	root.AddChild(shown)

	var visited []string
	root.Walk(func(n *Node, _, _, _ float64) {
		visited = append(visited, n.Name)
	})
	if len(visited) != 2 || visited[0] != "root" || visited[1] != "shown" {
		t.Errorf("walk visited %v, want [root shown]", visited)
	}
}

func TestRemoveChildren(t *testing.T) {
	root := NewContainer("root")
	kids := make([]*Node, 5)
	for i := range kids {
		kids[i] = NewSprite("k", 1, Color{})
		root.AddChild(kids[i])
	}
	root.RemoveChildren()
	if len(root.Children()) != 0 {
		t.Fatalf("children remain after RemoveChildren")
	}
	for _, k := range kids {
		if k.Parent() != nil {
			t.Fatalf("detached child still points at parent")
		}
	}
}
