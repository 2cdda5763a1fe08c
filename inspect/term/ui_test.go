package term

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspector-generator/inspect"
)

type stubDriver struct {
	inputs  []string
	confirm []bool
	infos   []string

	asked    []InputConfig
	prompted []ConfirmConfig
	inputPos int
	boolPos  int
	failAt   int // 1-based input index that fails; 0 never fails
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.asked = append(s.asked, cfg)

	if s.failAt > 0 && len(s.asked) == s.failAt {
		return "", ErrAborted
	}

	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}

	val := s.inputs[s.inputPos]
	s.inputPos++

	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.prompted = append(s.prompted, cfg)

	if s.boolPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}

	val := s.confirm[s.boolPos]
	s.boolPos++

	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

type address struct {
	City string
}

func (a *address) RenderInspector(ui inspect.UI) {
	a.fields(ui)
}

func (a *address) RenderInspectorNested(ui inspect.UI, label string) {
	ui.Text(label)
	a.fields(ui)
}

func (a *address) fields(ui inspect.UI) {
	ui.PushID("City")
	inspect.FieldLabel(ui, "City", inspect.DefaultLabelColumn)
	ui.InputText(inspect.HiddenLabel, &a.City)
	ui.PopID()
}

type person struct {
	Name   string
	Age    uint8
	Weight float32
	Active bool
	Home   address
}

func (p *person) RenderInspector(ui inspect.UI) {
	ui.PushID("Name")
	inspect.FieldLabel(ui, "Name", inspect.DefaultLabelColumn)
	ui.InputText(inspect.HiddenLabel, &p.Name)
	ui.PopID()
	ui.PushID("Age")
	inspect.FieldLabel(ui, "Age", inspect.DefaultLabelColumn)
	inspect.SliderScalar(ui, inspect.HiddenLabel, &p.Age, 0, 120)
	ui.PopID()
	ui.PushID("Weight")
	inspect.FieldLabel(ui, "Weight", inspect.DefaultLabelColumn)
	inspect.InputScalar(ui, inspect.HiddenLabel, &p.Weight)
	ui.PopID()
	ui.PushID("Active")
	inspect.FieldLabel(ui, "Active", inspect.DefaultLabelColumn)
	ui.Checkbox(inspect.HiddenLabel, &p.Active)
	ui.PopID()
	ui.PushID("Home")
	inspect.Delegate(ui, &p.Home, "Home")
	ui.PopID()
}

func TestUI_PromptsEachWidget(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"alice", "42", "70.5", "Paris"},
		confirm: []bool{true},
	}
	ui := New(WithPromptDriver(driver))

	p := person{Name: "bob", Age: 30, Weight: 80}
	p.RenderInspector(ui)

	require.NoError(t, ui.Err())
	assert.Equal(t, person{Name: "alice", Age: 42, Weight: 70.5, Active: true, Home: address{City: "Paris"}}, p)

	require.Len(t, driver.asked, 4)
	assert.Equal(t, InputConfig{Message: "Name", Default: "bob", Help: "Name"}, driver.asked[0])
	assert.Equal(t, "Age", driver.asked[1].Message)
	assert.Equal(t, "30", driver.asked[1].Default)
	assert.Equal(t, "a value between 0 and 120", driver.asked[1].Help)
	assert.Equal(t, "City", driver.asked[3].Message)
	assert.Equal(t, "Home/City", driver.asked[3].Help)

	require.Len(t, driver.prompted, 1)
	assert.Equal(t, ConfirmConfig{Message: "Active", Help: "Active"}, driver.prompted[0])

	assert.Equal(t, []string{"Home"}, driver.infos)
}

func TestUI_SliderValidator(t *testing.T) {
	driver := &stubDriver{inputs: []string{"bob", "50", "80", "Rome"}, confirm: []bool{false}}
	ui := New(WithPromptDriver(driver))

	p := person{Name: "bob"}
	p.RenderInspector(ui)
	require.NoError(t, ui.Err())

	validate := driver.asked[1].Validator
	require.NotNil(t, validate)
	assert.NoError(t, validate("120"))
	assert.Error(t, validate("121"))
	assert.Error(t, validate("many"))
}

func TestUI_UnchangedValuesReportNoChange(t *testing.T) {
	driver := &stubDriver{inputs: []string{"7"}}
	ui := New(WithPromptDriver(driver))

	v := int64(7)
	assert.False(t, ui.InputInt("Count", &v))
	assert.Equal(t, "Count", driver.asked[0].Message)
}

func TestUI_AbortStopsPrompting(t *testing.T) {
	driver := &stubDriver{inputs: []string{"alice"}, failAt: 2}
	ui := New(WithPromptDriver(driver))

	p := person{Name: "bob", Age: 30}
	p.RenderInspector(ui)

	require.ErrorIs(t, ui.Err(), ErrAborted)
	assert.Len(t, driver.asked, 2)
	assert.Empty(t, driver.prompted)
	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, uint8(30), p.Age)
}

func TestInRange(t *testing.T) {
	check := inRange(1.0, 2.0)
	assert.NoError(t, check(1.5))
	assert.Error(t, check(2.5))

	assert.NoError(t, inRange[int64](10, 0)(99))
}
