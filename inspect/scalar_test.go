package inspect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"inspector-generator/inspect"
	"inspector-generator/inspect/inspecttest"
)

func TestInputScalar_Widening(t *testing.T) {
	rec := inspecttest.NewRecorder()

	var (
		i8  int8    = -3
		u16 uint16  = 9
		f32 float32 = 0.5
	)

	assert.False(t, inspect.InputScalar(rec, "a", &i8))
	assert.False(t, inspect.InputScalar(rec, "b", &u16))
	assert.False(t, inspect.InputScalar(rec, "c", &f32))

	assert.Equal(t, []string{
		"input_int =-3",
		"input_uint =9",
		"input_float =0.5",
	}, rec.WidgetStrings())
}

func TestInputScalar_NarrowsEdit(t *testing.T) {
	rec := inspecttest.NewRecorder().Edit("", 300)

	var v uint16 = 1
	assert.True(t, inspect.InputScalar(rec, inspect.HiddenLabel, &v))
	assert.Equal(t, uint16(300), v)
}

func TestInputScalar_ClampsToType(t *testing.T) {
	t.Run("uint8 above range", func(t *testing.T) {
		var v uint8 = 1
		assert.True(t, inspect.InputScalar(inspecttest.NewRecorder().Edit("", 300), inspect.HiddenLabel, &v))
		assert.Equal(t, uint8(255), v)
	})

	t.Run("int8 below range", func(t *testing.T) {
		var v int8 = 1
		assert.True(t, inspect.InputScalar(inspecttest.NewRecorder().Edit("", -200), inspect.HiddenLabel, &v))
		assert.Equal(t, int8(-128), v)
	})

	t.Run("int8 above range", func(t *testing.T) {
		var v int8
		assert.True(t, inspect.InputScalar(inspecttest.NewRecorder().Edit("", 1000), inspect.HiddenLabel, &v))
		assert.Equal(t, int8(127), v)
	})

	t.Run("uint64 keeps full range", func(t *testing.T) {
		var v uint64
		assert.True(t, inspect.InputScalar(inspecttest.NewRecorder().Edit("", uint64(math.MaxUint64)), inspect.HiddenLabel, &v))
		assert.Equal(t, uint64(math.MaxUint64), v)
	})

	t.Run("float32 overflow", func(t *testing.T) {
		var v float32
		assert.True(t, inspect.InputScalar(inspecttest.NewRecorder().Edit("", -1e40), inspect.HiddenLabel, &v))
		assert.Equal(t, float32(-math.MaxFloat32), v)
	})
}

func TestSliderScalar_ClampsToType(t *testing.T) {
	var v uint8 = 5
	assert.True(t, inspect.SliderScalar(inspecttest.NewRecorder().Edit("", 999), inspect.HiddenLabel, &v, 0, 10))
	assert.Equal(t, uint8(255), v)
}

func TestSliderScalar(t *testing.T) {
	rec := inspecttest.NewRecorder()

	var age uint32 = 30
	inspect.SliderScalar(rec, inspect.HiddenLabel, &age, 0, 120)

	var temp float64 = -4
	inspect.SliderScalar(rec, inspect.HiddenLabel, &temp, -40.5, 60)

	var level int = 5
	inspect.SliderScalar(rec, inspect.HiddenLabel, &level, 10, 1)

	assert.Equal(t, []string{
		"slider_uint =30 [0..120]",
		"slider_float =-4 [-40.5..60]",
		"slider_int =5 [10..1]",
	}, rec.WidgetStrings())
}

func TestSliderScalar_WritesBack(t *testing.T) {
	rec := inspecttest.NewRecorder().Edit("", 0.75)

	var volume float32 = 0.5
	assert.True(t, inspect.SliderScalar(rec, inspect.HiddenLabel, &volume, 0, 1))
	assert.InDelta(t, 0.75, volume, 1e-6)
}

func TestFieldLabel(t *testing.T) {
	rec := inspecttest.NewRecorder()

	inspect.FieldLabel(rec, "Age", 72)

	assert.Equal(t, []inspecttest.Call{
		{Op: inspecttest.OpText, Label: "Age"},
		{Op: inspecttest.OpSameLine, Value: float32(72)},
	}, rec.Calls)
}
