package angle

import (
	"math"
	"testing"
)

func TestUnitConversionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		a    Angle
	}{
		{"positive degrees", Degrees(123.456)},
		{"negative degrees", Degrees(-45.5)},
		{"radians", Radians(1.234)},
		{"hours", Hours(16.245)},
		{"beyond a turn", Degrees(725.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// deg -> rad -> hours -> deg should reproduce the original
			back := tt.a.To(UnitRadians).To(UnitHours).To(tt.a.Unit())
			if math.Abs(back.Deg()-tt.a.Deg()) > 1e-9 {
				t.Errorf("round trip = %v deg, want %v deg", back.Deg(), tt.a.Deg())
			}
		})
	}
}

func TestConversionScale(t *testing.T) {
	a := Degrees(45)
	if math.Abs(a.Rad()-math.Pi/4) > 1e-12 {
		t.Errorf("45° in radians = %v, want %v", a.Rad(), math.Pi/4)
	}
	if math.Abs(a.Hrs()-3) > 1e-12 {
		t.Errorf("45° in hours = %v, want 3", a.Hrs())
	}

	h := Hours(6)
	if math.Abs(h.Deg()-90) > 1e-12 {
		t.Errorf("6ʰ in degrees = %v, want 90", h.Deg())
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name string
		a    Angle
		want float64
	}{
		{"in range", Degrees(123), 123},
		{"negative", Degrees(-90), 270},
		{"exact turn", Degrees(360), 0},
		{"two turns", Degrees(720), 0},
		{"large negative", Degrees(-725), 355},
		{"hours wrap", Hours(25.5), 1.5},
		{"zero", Degrees(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Norm()
			if math.Abs(got.val-tt.want) > 1e-9 {
				t.Errorf("Norm() = %v, want %v", got.val, tt.want)
			}
			if got.val < 0 || got.val >= full(got.unit) {
				t.Errorf("Norm() out of range: %v", got.val)
			}

			// Idempotence
			again := got.Norm()
			if again.val != got.val {
				t.Errorf("Norm not idempotent: %v then %v", got.val, again.val)
			}
		})
	}
}

func TestNormHalf(t *testing.T) {
	tests := []struct {
		name string
		a    Angle
		want float64
	}{
		{"in range", Degrees(45), 45},
		{"above half", Degrees(270), -90},
		{"exact half turn", Degrees(180), -180},
		{"negative half", Degrees(-180), -180},
		{"full turn", Degrees(360), 0},
		{"hours", Hours(13), -11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.NormHalf()
			if math.Abs(got.val-tt.want) > 1e-9 {
				t.Errorf("NormHalf() = %v, want %v", got.val, tt.want)
			}
		})
	}
}

func TestTrig(t *testing.T) {
	a := Degrees(30)
	if math.Abs(a.Sin()-0.5) > 1e-12 {
		t.Errorf("sin 30° = %v, want 0.5", a.Sin())
	}

	h := Hours(6) // 90 degrees
	if math.Abs(h.Cos()) > 1e-12 {
		t.Errorf("cos 6ʰ = %v, want 0", h.Cos())
	}

	inv := Asin(0.5)
	if inv.Unit() != UnitRadians {
		t.Errorf("Asin unit = %v, want radians", inv.Unit())
	}
	if math.Abs(inv.Deg()-30) > 1e-9 {
		t.Errorf("asin 0.5 = %v°, want 30°", inv.Deg())
	}

	q := Atan2(-1, -1)
	if math.Abs(q.Deg()+135) > 1e-9 {
		t.Errorf("atan2(-1,-1) = %v°, want -135°", q.Deg())
	}
}

func TestDecimalString(t *testing.T) {
	tests := []struct {
		a    Angle
		want string
	}{
		{Degrees(45), "45.0000°"},
		{Radians(math.Pi / 4), "0.7854 rad"},
		{Hours(3), "3.0000ʰ"},
		{Degrees(-12.34567), "-12.3457°"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	sum := Degrees(90).Add(Hours(2)) // 2h = 30°
	if math.Abs(sum.Deg()-120) > 1e-12 {
		t.Errorf("90° + 2ʰ = %v°, want 120°", sum.Deg())
	}
	if sum.Unit() != UnitDegrees {
		t.Errorf("sum unit = %v, want degrees", sum.Unit())
	}

	diff := Hours(10).Sub(Degrees(45)) // 45° = 3h
	if math.Abs(diff.Hrs()-7) > 1e-12 {
		t.Errorf("10ʰ - 45° = %vʰ, want 7ʰ", diff.Hrs())
	}
}

func TestNeg(t *testing.T) {
	n := Degrees(63.7).Neg()
	if math.Abs(n.Deg()+63.7) > 1e-12 {
		t.Errorf("Neg(63.7°) = %v°, want -63.7°", n.Deg())
	}
	if n.Unit() != UnitDegrees {
		t.Errorf("unit = %v, want degrees", n.Unit())
	}

	// Negating then normalizing mirrors an azimuth about north.
	if m := n.Norm(); math.Abs(m.Deg()-(360-63.7)) > 1e-12 {
		t.Errorf("Neg.Norm = %v°, want %v°", m.Deg(), 360-63.7)
	}
}
