package angle

import (
	"math"
	"testing"
)

func TestDMSRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dms  DMS
	}{
		{"plain positive", DMS{Deg: 45, Min: 30, Sec: 15}},
		{"negative", DMS{Neg: true, Deg: 12, Min: 5, Sec: 30}},
		{"negative zero degrees", DMS{Neg: true, Deg: 0, Min: 0, Sec: 1}},
		{"zero", DMS{}},
		{"fractional seconds", DMS{Deg: 10, Min: 25, Sec: 11.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDMS(tt.dms).DMS()
			if got.Neg != tt.dms.Neg || got.Deg != tt.dms.Deg || got.Min != tt.dms.Min {
				t.Errorf("round trip = %+v, want %+v", got, tt.dms)
			}
			if math.Abs(got.Sec-tt.dms.Sec) > 1e-5 {
				t.Errorf("seconds = %v, want %v", got.Sec, tt.dms.Sec)
			}
		})
	}
}

func TestHMSRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hms  HMS
	}{
		{"afternoon", HMS{Hour: 14, Min: 35, Sec: 54}},
		{"negative", HMS{Neg: true, Hour: 14, Min: 35, Sec: 54}},
		{"negative zero hours", HMS{Neg: true, Hour: 0, Min: 0, Sec: 1}},
		{"midnight", HMS{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromHMS(tt.hms).HMS()
			if got.Neg != tt.hms.Neg || got.Hour != tt.hms.Hour || got.Min != tt.hms.Min {
				t.Errorf("round trip = %+v, want %+v", got, tt.hms)
			}
			if math.Abs(got.Sec-tt.hms.Sec) > 1e-5 {
				t.Errorf("seconds = %v, want %v", got.Sec, tt.hms.Sec)
			}
		})
	}
}

func TestSexagesimalCarry(t *testing.T) {
	// 29.999999999 degrees decomposes to 29°59'59.999...; the carry must
	// promote it to 30°00'00" rather than 29°59'60".
	d := Degrees(29.9999999999).DMS()
	if d.Deg != 30 || d.Min != 0 || math.Abs(d.Sec) > 1e-5 {
		t.Errorf("carry failed: %+v", d)
	}
}

func TestDMSString(t *testing.T) {
	tests := []struct {
		a    Angle
		want string
	}{
		{Degrees(45), `45°00'00"`},
		{FromDMS(DMS{Neg: true, Deg: 0, Min: 0, Sec: 1}), `-0°00'01"`},
		{Degrees(182.5243), `182°31'27"`},
		{Degrees(-30.508333333), `-30°30'30"`},
	}

	for _, tt := range tests {
		if got := tt.a.DMS().String(); got != tt.want {
			t.Errorf("DMS String() = %q, want %q", got, tt.want)
		}
	}
}

func TestHMSString(t *testing.T) {
	tests := []struct {
		a    Angle
		want string
	}{
		{Hours(3), "03ʰ00ᵐ00ˢ"},
		{Hours(-14.598333333333), "-14ʰ35ᵐ54ˢ"},
		{FromHMS(HMS{Hour: 16, Min: 14, Sec: 42}), "16ʰ14ᵐ42ˢ"},
	}

	for _, tt := range tests {
		if got := tt.a.HMS().String(); got != tt.want {
			t.Errorf("HMS String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStringCarryAtSixty(t *testing.T) {
	// 59.9996 seconds rounds to 60 at display precision and must carry
	// through minutes into the degree field.
	a := FromDMS(DMS{Deg: 10, Min: 59, Sec: 59.8})
	if got := a.DMS().String(); got != `11°00'00"` {
		t.Errorf("String() = %q, want %q", got, `11°00'00"`)
	}
}

func TestParseDMS(t *testing.T) {
	tests := []struct {
		in      string
		wantDeg float64
		wantErr bool
	}{
		{`45°00'00"`, 45, false},
		{`-0°00'01"`, -1.0 / 3600, false},
		{`+12°30'00"`, 12.5, false},
		{`12°61'00"`, 0, true},
		{`garbage`, 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDMS(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDMS(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDMS(%q): %v", tt.in, err)
			continue
		}
		if math.Abs(got.Deg()-tt.wantDeg) > 1e-9 {
			t.Errorf("ParseDMS(%q) = %v°, want %v°", tt.in, got.Deg(), tt.wantDeg)
		}
	}
}

func TestParseHMS(t *testing.T) {
	got, err := ParseHMS("16ʰ14ᵐ42ˢ")
	if err != nil {
		t.Fatalf("ParseHMS: %v", err)
	}
	want := 16.0 + 14.0/60 + 42.0/3600
	if math.Abs(got.Hrs()-want) > 1e-9 {
		t.Errorf("ParseHMS = %vʰ, want %vʰ", got.Hrs(), want)
	}

	if _, err := ParseHMS("25:00:00"); err == nil {
		t.Error("expected error for non-glyph format")
	}
}
