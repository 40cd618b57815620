package hwy

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoad(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load[float32, X4](data)

	if v.NumLanes() != 4 {
		t.Fatalf("Load: NumLanes = %d, want 4", v.NumLanes())
	}
	if diff := cmp.Diff([]float32{1, 2, 3, 4}, v.Data()); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadShortSource(t *testing.T) {
	v := Load[int16, X8]([]int16{7, 8, 9})
	if diff := cmp.Diff([]int16{7, 8, 9, 0, 0, 0, 0, 0}, v.Data()); diff != "" {
		t.Errorf("Load short mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCopiesSource(t *testing.T) {
	data := []int32{1, 2, 3, 4}
	v := Load[int32, X4](data)
	data[0] = 100
	if v.Lane(0) != 1 {
		t.Errorf("Load aliased its source: lane 0 = %d, want 1", v.Lane(0))
	}
}

func TestSplat(t *testing.T) {
	v := Splat[float32, X8](42.0)

	if v.NumLanes() != 8 {
		t.Fatalf("Splat: NumLanes = %d, want 8", v.NumLanes())
	}
	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 42.0 {
			t.Errorf("Splat: lane %d: got %v, want %v", i, v.Lane(i), 42.0)
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32, X16]()
	var zeroValue Vec[int32, X16]

	for i := 0; i < v.NumLanes(); i++ {
		if v.Lane(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.Lane(i))
		}
	}
	if !v.Equal(zeroValue) {
		t.Error("Zero() should equal the zero value Vec")
	}
}

func TestZeroValueVecOperands(t *testing.T) {
	var a Vec[int32, X4]
	got := Add(a, Splat[int32, X4](3))
	if diff := cmp.Diff([]int32{3, 3, 3, 3}, got.Data()); diff != "" {
		t.Errorf("Add with zero value mismatch (-want +got):\n%s", diff)
	}
}

func TestIota(t *testing.T) {
	v := Iota[uint8, X4]()
	if diff := cmp.Diff([]uint8{0, 1, 2, 3}, v.Data()); diff != "" {
		t.Errorf("Iota mismatch (-want +got):\n%s", diff)
	}
}

func TestStore(t *testing.T) {
	v := Iota[int64, X4]()

	short := make([]int64, 2)
	v.Store(short)
	if diff := cmp.Diff([]int64{0, 1}, short); diff != "" {
		t.Errorf("Store short mismatch (-want +got):\n%s", diff)
	}

	long := []int64{9, 9, 9, 9, 9, 9}
	Store(v, long)
	if diff := cmp.Diff([]int64{0, 1, 2, 3, 9, 9}, long); diff != "" {
		t.Errorf("Store long mismatch (-want +got):\n%s", diff)
	}
}

func TestDataIsCopy(t *testing.T) {
	v := Splat[int32, X4](5)
	d := v.Data()
	d[0] = 99
	if v.Lane(0) != 5 {
		t.Errorf("Data exposed internal storage: lane 0 = %d, want 5", v.Lane(0))
	}
}

func TestLanePanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Lane(4) on a 4-lane vector should panic")
		}
	}()
	Zero[float32, X4]().Lane(4)
}

func TestString(t *testing.T) {
	v := Load[int32, X4]([]int32{1, -2, 3, 4})
	if got := v.String(); got != "[1 -2 3 4]" {
		t.Errorf("String() = %q, want %q", got, "[1 -2 3 4]")
	}
}

func TestArithmetic(t *testing.T) {
	a := Load[float32, X4]([]float32{10, 20, 30, 40})
	b := Load[float32, X4]([]float32{5, 4, 3, 2})

	tests := []struct {
		name string
		got  Vec[float32, X4]
		want []float32
	}{
		{"Add", Add(a, b), []float32{15, 24, 33, 42}},
		{"Sub", Sub(a, b), []float32{5, 16, 27, 38}},
		{"Mul", Mul(a, b), []float32{50, 80, 90, 80}},
		{"Div", Div(a, b), []float32{2, 5, 10, 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestFloat64Arithmetic(t *testing.T) {
	a := Load[float64, X8]([]float64{1.5, -2, 3, 4, 5, 6, 7, 0.1})
	b := Load[float64, X8]([]float64{0.5, 2, -3, 4, 0, 1e300, 2, 0.2})

	sum := Add(a, b)
	prod := Mul(a, b)
	for i := range 8 {
		if want := a.Lane(i) + b.Lane(i); sum.Lane(i) != want {
			t.Errorf("Add: lane %d: got %v, want %v", i, sum.Lane(i), want)
		}
		if want := a.Lane(i) * b.Lane(i); prod.Lane(i) != want {
			t.Errorf("Mul: lane %d: got %v, want %v", i, prod.Lane(i), want)
		}
	}
}

func TestOperandsUnchanged(t *testing.T) {
	a := Load[float64, X4]([]float64{1, 2, 3, 4})
	b := Load[float64, X4]([]float64{5, 6, 7, 8})
	_ = Add(a, b)
	_ = Mul(a, b)
	if diff := cmp.Diff([]float64{1, 2, 3, 4}, a.Data()); diff != "" {
		t.Errorf("operand a changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{5, 6, 7, 8}, b.Data()); diff != "" {
		t.Errorf("operand b changed (-want +got):\n%s", diff)
	}
}

func TestIntegerWrapping(t *testing.T) {
	a := Splat[int8, X2](math.MaxInt8)
	got := Add(a, Splat[int8, X2](1))
	if got.Lane(0) != math.MinInt8 {
		t.Errorf("Add int8 overflow: got %d, want %d", got.Lane(0), math.MinInt8)
	}

	u := Sub(Zero[uint16, X2](), Splat[uint16, X2](1))
	if u.Lane(1) != math.MaxUint16 {
		t.Errorf("Sub uint16 underflow: got %d, want %d", u.Lane(1), math.MaxUint16)
	}

	d := Div(Splat[int32, X2](math.MinInt32), Splat[int32, X2](-1))
	if d.Lane(0) != math.MinInt32 {
		t.Errorf("Div MinInt32/-1: got %d, want %d", d.Lane(0), math.MinInt32)
	}
}

func TestIntegerDivideByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("integer Div by zero should panic")
		}
	}()
	Div(Splat[int32, X4](1), Load[int32, X4]([]int32{1, 1, 0, 1}))
}

func TestFloatDivideByZero(t *testing.T) {
	got := Div(Load[float32, X4]([]float32{1, -1, 0, 2}), Zero[float32, X4]())
	if !math.IsInf(float64(got.Lane(0)), 1) {
		t.Errorf("1/0: got %v, want +Inf", got.Lane(0))
	}
	if !math.IsInf(float64(got.Lane(1)), -1) {
		t.Errorf("-1/0: got %v, want -Inf", got.Lane(1))
	}
	if !math.IsNaN(float64(got.Lane(2))) {
		t.Errorf("0/0: got %v, want NaN", got.Lane(2))
	}
}

func TestRem(t *testing.T) {
	a := Load[int32, X4]([]int32{7, -7, 7, -7})
	b := Load[int32, X4]([]int32{3, 3, -3, -3})
	if diff := cmp.Diff([]int32{1, -1, 1, -1}, Rem(a, b).Data()); diff != "" {
		t.Errorf("Rem mismatch (-want +got):\n%s", diff)
	}
}

func TestBitwise(t *testing.T) {
	a := Load[uint8, X4]([]uint8{0b1100, 0b1010, 0xFF, 0})
	b := Load[uint8, X4]([]uint8{0b1010, 0b0110, 0x0F, 0xFF})

	tests := []struct {
		name string
		got  Vec[uint8, X4]
		want []uint8
	}{
		{"And", And(a, b), []uint8{0b1000, 0b0010, 0x0F, 0}},
		{"Or", Or(a, b), []uint8{0b1110, 0b1110, 0xFF, 0xFF}},
		{"Xor", Xor(a, b), []uint8{0b0110, 0b1100, 0xF0, 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got.Data()); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestShifts(t *testing.T) {
	a := Load[int32, X4]([]int32{1, 1, -16, -16})
	b := Load[int32, X4]([]int32{3, 33, 2, 32})

	// Shift amounts wrap modulo 32: 33 -> 1, 32 -> 0.
	if diff := cmp.Diff([]int32{8, 2, -64, -16}, Shl(a, b).Data()); diff != "" {
		t.Errorf("Shl mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int32{0, 0, -4, -16}, Shr(a, b).Data()); diff != "" {
		t.Errorf("Shr mismatch (-want +got):\n%s", diff)
	}
}

func TestShrUnsignedIsLogical(t *testing.T) {
	got := Shr(Splat[uint8, X2](0x80), Splat[uint8, X2](7))
	if got.Lane(0) != 1 {
		t.Errorf("Shr uint8: got %d, want 1", got.Lane(0))
	}
}

func TestNegativeShiftWraps(t *testing.T) {
	// -1 masked to the 8-bit width is 7.
	got := Shl(Splat[int8, X2](1), Splat[int8, X2](-1))
	if got.Lane(0) != math.MinInt8 {
		t.Errorf("Shl by -1: got %d, want %d", got.Lane(0), math.MinInt8)
	}
}

type celsius float64

func TestNamedElementType(t *testing.T) {
	a := Load[celsius, X2]([]celsius{20.5, -3})
	got := Add(a, Splat[celsius, X2](1.5))
	if diff := cmp.Diff([]celsius{22, -1.5}, got.Data()); diff != "" {
		t.Errorf("Add named float mismatch (-want +got):\n%s", diff)
	}
	if got := Mul(a, Splat[celsius, X2](2)); got.Lane(0) != 41 {
		t.Errorf("Mul named float: got %v, want 41", got.Lane(0))
	}
}
