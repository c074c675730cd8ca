package core

import "testing"

func TestDefaultCatalogShapes(t *testing.T) {
	c := DefaultCatalog()

	tests := []struct {
		name        string
		connections DirectionSet
	}{
		{name: "Corner", connections: NewDirectionSet(Left, Up)},
		{name: "Straight", connections: NewDirectionSet(Left, Right)},
		{name: "Tee", connections: NewDirectionSet(Left, Up, Right)},
		{name: "End", connections: NewDirectionSet(Left)},
		{name: "Cross", connections: NewDirectionSet(Left, Up, Right, Down)},
		{name: "Edge", connections: NewDirectionSet()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, ok := c.Lookup(tc.name)
			if !ok {
				t.Fatalf("shape %q not in default catalog", tc.name)
			}
			if !s.Connections.Equal(tc.connections) {
				t.Errorf("%s connections = %v, want %v", tc.name, s.Connections, tc.connections)
			}
		})
	}
}

func TestCatalogLookupUnknown(t *testing.T) {
	c := DefaultCatalog()
	if _, ok := c.Lookup("Spiral"); ok {
		t.Error("Lookup should fail for unregistered shapes")
	}
}

func TestCatalogNamesSorted(t *testing.T) {
	c := DefaultCatalog()
	names := c.Names()

	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %v", names)
		}
	}
}

func TestCatalogRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate shape should panic")
		}
	}()

	c := NewCatalog()
	c.Register(&Shape{Name: "End", Connections: NewDirectionSet(Left)})
	c.Register(&Shape{Name: "End", Connections: NewDirectionSet(Right)})
}

func TestShapeRotate(t *testing.T) {
	c := DefaultCatalog()
	corner, _ := c.Lookup("Corner")

	tests := []struct {
		rotation Rotation
		expected DirectionSet
	}{
		{rotation: R0, expected: NewDirectionSet(Left, Up)},
		{rotation: R1, expected: NewDirectionSet(Up, Right)},
		{rotation: R2, expected: NewDirectionSet(Right, Down)},
		{rotation: R3, expected: NewDirectionSet(Down, Left)},
	}

	for _, tc := range tests {
		got := corner.Rotate(tc.rotation)
		if !got.Equal(tc.expected) {
			t.Errorf("Corner.Rotate(%d) = %v, want %v", tc.rotation, got, tc.expected)
		}
	}
}

func TestEdgeShapeIsEmpty(t *testing.T) {
	for _, r := range Rotations {
		if EdgeShape.Rotate(r).Len() != 0 {
			t.Errorf("EdgeShape.Rotate(%d) should be empty", r)
		}
	}
}
