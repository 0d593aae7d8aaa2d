package generator

import (
	"testing"

	"roomcarve/pkg/engine/world"
)

func assertComponents(t *testing.T, got []Component, want []world.Location, terrain world.Terrain) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d components %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].Loc != want[i] {
			t.Errorf("component %d at %v, want %v", i, got[i].Loc, want[i])
		}
		if got[i].Terrain != terrain {
			t.Errorf("component %d terrain %v, want %v", i, got[i].Terrain, terrain)
		}
	}
}

func TestFeature_Size(t *testing.T) {
	f := NewFeature([]Component{
		{world.NewLocation(0, 0), world.Wall},
		{world.NewLocation(1, 0), world.Wall},
		{world.NewLocation(1, 1), world.Wall},
	})
	if f.Width() != 2 {
		t.Errorf("Width() = %d, want 2", f.Width())
	}
	if f.Height() != 2 {
		t.Errorf("Height() = %d, want 2", f.Height())
	}
}

func TestFeature_EmptySize(t *testing.T) {
	f := NewFeature(nil)
	if f.Width() != 0 || f.Height() != 0 {
		t.Errorf("empty feature size = %dx%d, want 0x0", f.Width(), f.Height())
	}
}

func TestFeatureBuilder_TopLeft(t *testing.T) {
	got := NewFeatureBuilder(featureShape(world.Wall)).
		AlignVertical(AlignTop).
		AlignHorizontal(AlignLeft).
		At(world.NewLocation(2, 3)).
		Build()
	assertComponents(t, got.Components(), []world.Location{world.NewLocation(2, 3), world.NewLocation(3, 3), world.NewLocation(2, 4), world.NewLocation(3, 4), world.NewLocation(2, 5)}, world.Wall)
}

func TestFeatureBuilder_BottomRight(t *testing.T) {
	got := NewFeatureBuilder(featureShape(world.Wall)).
		AlignVertical(AlignBottom).
		AlignHorizontal(AlignRight).
		At(world.NewLocation(5, 2)).
		Build()
	assertComponents(t, got.Components(), []world.Location{world.NewLocation(4, 0), world.NewLocation(5, 0), world.NewLocation(4, 1), world.NewLocation(5, 1), world.NewLocation(4, 2)}, world.Wall)
}

func TestFeatureBuilder_CenterSquare(t *testing.T) {
	got := NewFeatureBuilder(Rectangle(3, 3, world.Wall)).
		AlignVertical(AlignMiddle).
		AlignHorizontal(AlignCenter).
		At(world.NewLocation(4, 1)).
		Build()
	assertComponents(t, got.Components(), []world.Location{
		world.NewLocation(3, 0), world.NewLocation(4, 0), world.NewLocation(5, 0),
		world.NewLocation(3, 1), world.NewLocation(4, 1), world.NewLocation(5, 1),
		world.NewLocation(3, 2), world.NewLocation(4, 2), world.NewLocation(5, 2),
	}, world.Wall)
}

func TestFeatureBuilder_CenterEvenSpanBiasesHigh(t *testing.T) {
	// a 4-wide span centred on x=10 puts columns 8..11 under it
	dx, dy := NewFeatureBuilder(Rectangle(4, 2, world.Floor)).At(world.NewLocation(10, 10)).Offset()
	if dx != 8 {
		t.Errorf("dx = %d, want 8", dx)
	}
	if dy != 9 {
		t.Errorf("dy = %d, want 9", dy)
	}
}

func TestFeatureBuilder_PreservesTerrainPerComponent(t *testing.T) {
	comps := []Component{
		{world.NewLocation(0, 0), world.Wall},
		{world.NewLocation(1, 0), world.Floor},
		{world.NewLocation(2, 0), world.Debug},
	}
	got := NewFeatureBuilder(comps).AlignHorizontal(AlignLeft).AlignVertical(AlignTop).At(world.NewLocation(5, 5)).Build()
	for i, c := range got.Components() {
		if c.Terrain != comps[i].Terrain {
			t.Errorf("component %d terrain %v, want %v", i, c.Terrain, comps[i].Terrain)
		}
	}
}

func TestFeatureBuilder_ConfiguringReturnsNewBuilder(t *testing.T) {
	base := NewFeatureBuilder(featureShape(world.Wall)).At(world.NewLocation(2, 3))
	_ = base.AlignHorizontal(AlignLeft).AlignVertical(AlignTop)

	dx, dy := base.Offset()
	// base is still Center/Middle: minX=1 span 2, minY=1 span 3
	if dx != 0 || dy != 1 {
		t.Errorf("base Offset() = (%d, %d), want (0, 1)", dx, dy)
	}

	first := base.Build().Components()
	second := base.Build().Components()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Build is not repeatable at component %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestFeatureBuilder_EmptyPanics(t *testing.T) {
	expectPanic(t, "NewFeatureBuilder(nil)", func() { NewFeatureBuilder(nil) })
}

func TestFeature_Stamp(t *testing.T) {
	g := world.NewGrid(6, 6)
	f := NewFeatureBuilder(Rectangle(2, 2, world.Wall)).
		AlignHorizontal(AlignRight).
		AlignVertical(AlignBottom).
		At(world.NewLocation(5, 5)).
		Build()
	if !f.Fits(g) {
		t.Fatal("Fits() = false, want true")
	}
	f.Stamp(g)
	if n := g.CountTerrain(world.Wall); n != 4 {
		t.Errorf("%d wall tiles after Stamp, want 4", n)
	}
	if g.TerrainAt(world.NewLocation(4, 4)) != world.Wall {
		t.Error("(4, 4) is not a wall after Stamp")
	}
}

func TestFeature_StampOutOfBoundsPanics(t *testing.T) {
	g := world.NewGrid(3, 3)
	f := NewFeatureBuilder(Rectangle(3, 3, world.Wall)).At(world.NewLocation(0, 0)).Build()
	if f.Fits(g) {
		t.Fatal("Fits() = true for a feature hanging off the grid")
	}
	expectPanic(t, "Stamp", func() { f.Stamp(g) })
	if n := g.CountTerrain(world.Wall); n != 0 {
		t.Errorf("%d wall tiles after a failed Stamp, want 0", n)
	}
}
