package demo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/idilsaglam/inventorydemo/internal/geometry"
	"github.com/idilsaglam/inventorydemo/internal/model"
	"github.com/idilsaglam/inventorydemo/internal/ui"
)

// demoTestContext holds the state for a single scenario.
type demoTestContext struct {
	area     float64
	err      error
	inv      *model.Inventory
	returned *model.Inventory
	message  string
	person   model.Person
	outputs  []string
	runErrs  []error
}

func (c *demoTestContext) reset() {
	*c = demoTestContext{}
}

func (c *demoTestContext) iCalculateTheAreaForRadius(radius float64) error {
	c.area, c.err = geometry.CalculateArea(radius)
	return nil
}

func (c *demoTestContext) theAreaIsPiTimesRadiusSquared(radius float64) error {
	if c.err != nil {
		return fmt.Errorf("expected area but got error: %v", c.err)
	}
	want := model.Pi * radius * radius
	if want == 0 {
		if c.area != 0 {
			return fmt.Errorf("expected 0, got %v", c.area)
		}
		return nil
	}
	if rel := math.Abs(c.area-want) / want; rel > 1e-9 {
		return fmt.Errorf("expected %v, got %v (relative error %v)", want, c.area, rel)
	}
	return nil
}

func (c *demoTestContext) theCalculationFailsWithStatus(statusName string) error {
	if c.err == nil {
		return errors.New("expected calculation to fail but it succeeded")
	}
	var gErr *geometry.Error
	if !errors.As(c.err, &gErr) {
		return fmt.Errorf("expected geometry.Error, got %T", c.err)
	}
	if gErr.Code.String() != statusName {
		return fmt.Errorf("expected status %s, got %s", statusName, gErr.Code.String())
	}
	return nil
}

func (c *demoTestContext) theErrorMessageContains(substring string) error {
	if c.err == nil {
		return errors.New("expected error but calculation succeeded")
	}
	if !strings.Contains(strings.ToLower(c.err.Error()), strings.ToLower(substring)) {
		return fmt.Errorf("expected error message to contain %q, got %q", substring, c.err.Error())
	}
	return nil
}

func (c *demoTestContext) theDefaultInventory() error {
	c.inv = model.DefaultInventory()
	return nil
}

func (c *demoTestContext) iProcessOf(qty int, item string) error {
	var out bytes.Buffer
	c.returned = c.inv.Process(&out, item, qty)
	c.message = strings.TrimSuffix(out.String(), "\n")
	return nil
}

func (c *demoTestContext) theInventoryHoldsOf(qty int, item string) error {
	got, ok := c.inv.Quantity(item)
	if !ok {
		return fmt.Errorf("item %q missing from %s", item, c.inv)
	}
	if got != qty {
		return fmt.Errorf("expected %d of %q, got %d", qty, item, got)
	}
	return nil
}

func (c *demoTestContext) theProcessingMessageIs(msg string) error {
	if c.message != msg {
		return fmt.Errorf("expected message %q, got %q", msg, c.message)
	}
	return nil
}

func (c *demoTestContext) theReturnedInventoryIsTheSameInventory() error {
	if c.returned != c.inv {
		return errors.New("Process returned a different inventory")
	}
	return nil
}

func (c *demoTestContext) aPersonNamedAged(name string, age int) error {
	c.person = model.NewPerson(name, age)
	return nil
}

func (c *demoTestContext) thePersonIsAnAdult(adult string) error {
	want := adult == "true"
	if c.person.IsAdult() != want {
		return fmt.Errorf("expected IsAdult()=%v for age %d", want, c.person.Age)
	}
	return nil
}

func (c *demoTestContext) thePersonInfoIs(info string) error {
	if got := c.person.Info(); got != info {
		return fmt.Errorf("expected %q, got %q", info, got)
	}
	return nil
}

func (c *demoTestContext) iRunTheDemonstrationTwice() error {
	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		err := NewRunner(ui.NewPrinter(&out, &out, ui.Options{})).Run()
		c.outputs = append(c.outputs, out.String())
		c.runErrs = append(c.runErrs, err)
	}
	return nil
}

func (c *demoTestContext) bothRunsSucceedWithIdenticalOutput() error {
	for i, err := range c.runErrs {
		if err != nil {
			return fmt.Errorf("run %d failed: %v", i+1, err)
		}
	}
	if c.outputs[0] != c.outputs[1] {
		return errors.New("runs produced different output")
	}
	return nil
}

func (c *demoTestContext) theOutputEndsWith(suffix string) error {
	if !strings.HasSuffix(c.outputs[0], suffix+"\n") {
		return fmt.Errorf("output does not end with %q", suffix)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &demoTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the default inventory$`, tc.theDefaultInventory)
	ctx.Step(`^a person named "([^"]*)" aged (-?\d+)$`, tc.aPersonNamedAged)

	// When steps
	ctx.Step(`^I calculate the area for radius (-?[\d.]+)$`, tc.iCalculateTheAreaForRadius)
	ctx.Step(`^I process (-?\d+) of "([^"]*)"$`, tc.iProcessOf)
	ctx.Step(`^I run the demonstration twice$`, tc.iRunTheDemonstrationTwice)

	// Then steps
	ctx.Step(`^the area is pi times ([\d.]+) squared$`, tc.theAreaIsPiTimesRadiusSquared)
	ctx.Step(`^the calculation fails with status "([^"]*)"$`, tc.theCalculationFailsWithStatus)
	ctx.Step(`^the error message contains "([^"]*)"$`, tc.theErrorMessageContains)
	ctx.Step(`^the inventory holds (-?\d+) of "([^"]*)"$`, tc.theInventoryHoldsOf)
	ctx.Step(`^the processing message is "(.*)"$`, tc.theProcessingMessageIs)
	ctx.Step(`^the returned inventory is the same inventory$`, tc.theReturnedInventoryIsTheSameInventory)
	ctx.Step(`^the person is an adult: (true|false)$`, tc.thePersonIsAnAdult)
	ctx.Step(`^the person info is "([^"]*)"$`, tc.thePersonInfoIs)
	ctx.Step(`^both runs succeed with identical output$`, tc.bothRunsSucceedWithIdenticalOutput)
	ctx.Step(`^the output ends with "([^"]*)"$`, tc.theOutputEndsWith)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
