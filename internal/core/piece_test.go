package core

import "testing"

func shapeByName(t *testing.T, name string) *Shape {
	t.Helper()
	s, ok := DefaultCatalog().Lookup(name)
	if !ok {
		t.Fatalf("shape %q not in default catalog", name)
	}
	return s
}

func TestPieceSymmetryDeduplication(t *testing.T) {
	tests := []struct {
		shape      string
		domainSize int
	}{
		{shape: "Corner", domainSize: 4},
		{shape: "Straight", domainSize: 2}, // 180-degree symmetry
		{shape: "Tee", domainSize: 4},
		{shape: "End", domainSize: 4},
		{shape: "Cross", domainSize: 1}, // fully symmetric
		{shape: "Edge", domainSize: 1},
	}

	for _, tc := range tests {
		t.Run(tc.shape, func(t *testing.T) {
			p := NewPiece(shapeByName(t, tc.shape), P(0, 0))
			if p.DomainSize() != tc.domainSize {
				t.Errorf("%s domain size = %d, want %d", tc.shape, p.DomainSize(), tc.domainSize)
			}
		})
	}
}

func TestPieceDomainKeepsSmallestRotations(t *testing.T) {
	p := NewPiece(shapeByName(t, "Straight"), P(0, 0))

	domain := p.Domain()
	if len(domain) != 2 || domain[0] != R0 || domain[1] != R1 {
		t.Errorf("Straight domain = %v, want [0 1]", domain)
	}
}

func TestPieceSetRotationRecomputesConnections(t *testing.T) {
	p := NewPiece(shapeByName(t, "End"), P(0, 0))

	p.SetRotation(R2)
	if p.Rotation() != R2 {
		t.Errorf("Rotation() = %d, want 2", p.Rotation())
	}
	if !p.Connections().Equal(NewDirectionSet(Right)) {
		t.Errorf("End at rotation 2 should connect Right, got %v", p.Connections())
	}

	// Out-of-range rotations are normalized.
	p.SetRotation(Rotation(5))
	if p.Rotation() != R1 {
		t.Errorf("SetRotation(5) left rotation %d, want 1", p.Rotation())
	}
	if !p.Connections().Equal(NewDirectionSet(Up)) {
		t.Errorf("End at rotation 1 should connect Up, got %v", p.Connections())
	}
}

func TestPieceCanConnect(t *testing.T) {
	p := NewPiece(shapeByName(t, "End"), P(0, 0))

	// With a full domain an End could face any direction.
	for _, d := range Directions {
		if !p.CanConnect(d) {
			t.Errorf("End with full domain should be able to connect %v", d)
		}
	}

	// After restricting to rotation 0 only Left remains reachable.
	p.Restrict([]Rotation{R0})
	if !p.CanConnect(Left) {
		t.Error("End restricted to rotation 0 should connect Left")
	}
	for _, d := range []Direction{Up, Right, Down} {
		if p.CanConnect(d) {
			t.Errorf("End restricted to rotation 0 should not connect %v", d)
		}
	}
}

func TestPieceMustConnect(t *testing.T) {
	// Straight must connect Left and Right only once its domain is the
	// horizontal rotation.
	p := NewPiece(shapeByName(t, "Straight"), P(0, 0))
	if p.MustConnect(Left) {
		t.Error("Straight with both orientations possible must not force Left")
	}

	p.Restrict([]Rotation{R0})
	if !p.MustConnect(Left) || !p.MustConnect(Right) {
		t.Error("horizontal Straight must connect Left and Right")
	}
	if p.MustConnect(Up) {
		t.Error("horizontal Straight must not connect Up")
	}

	// A Tee always has some connection in common across a narrowed domain.
	tee := NewPiece(shapeByName(t, "Tee"), P(0, 0))
	tee.Restrict([]Rotation{R0, R1})
	// rotate(0) = {L,U,R}, rotate(1) = {U,R,D}; Up and Right are shared.
	if !tee.MustConnect(Up) || !tee.MustConnect(Right) {
		t.Error("Tee with rotations {0,1} must connect Up and Right")
	}
	if tee.MustConnect(Left) {
		t.Error("Tee with rotations {0,1} must not force Left")
	}
}

func TestSentinelNeverConnects(t *testing.T) {
	p := NewPiece(EdgeShape, P(-1, 0))

	for _, d := range Directions {
		if p.CanConnect(d) {
			t.Errorf("sentinel CanConnect(%v) = true, want false", d)
		}
		if p.MustConnect(d) {
			t.Errorf("sentinel MustConnect(%v) = true, want false", d)
		}
	}
}

func TestPieceConnectionsInvariant(t *testing.T) {
	p := NewPiece(shapeByName(t, "Corner"), P(0, 0))

	for _, r := range Rotations {
		p.SetRotation(r)
		if !p.Connections().Equal(p.Shape().Rotate(r)) {
			t.Errorf("connections out of sync at rotation %d", r)
		}
	}
}
