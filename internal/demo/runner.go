// Package demo runs the fixed inventory and geometry demonstration.
package demo

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/inventorydemo/internal/geometry"
	"github.com/idilsaglam/inventorydemo/internal/model"
	"github.com/idilsaglam/inventorydemo/internal/ui"
)

const (
	Greeting    = "Hello, Moi!"
	StartBanner = "--- Inventory Demo Execution Start ---"
	EndBanner   = "--- Inventory Demo Execution End ---"

	demoRadius    = 5.0
	invalidRadius = -10.0
	countdownFrom = 5
	fruitMarker   = "e"
)

// Runner owns the inventory for one demonstration and prints every step through p.
type Runner struct {
	p   *ui.Printer
	log *zap.Logger
	inv *model.Inventory
}

type Option func(*Runner)

func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// WithInventory replaces the default starting stock.
func WithInventory(inv *model.Inventory) Option {
	return func(r *Runner) { r.inv = inv }
}

func NewRunner(p *ui.Printer, opts ...Option) *Runner {
	r := &Runner{p: p, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	if r.inv == nil {
		r.inv = model.DefaultInventory()
	}
	return r
}

func (r *Runner) Inventory() *model.Inventory { return r.inv }

// Run prints the whole sequence. Only a non-InvalidArgument failure is returned.
func (r *Runner) Run() error {
	r.log.Debug("demo started")
	r.p.Line(Greeting)
	r.p.Title(StartBanner)

	if err := r.functionCalls(); err != nil {
		return fmt.Errorf("function calls: %w", err)
	}

	r.section("Section 2: Loops and Conditionals")
	r.Fruits(fruitMarker)
	r.p.Blank()
	r.Countdown(countdownFrom)

	r.section("Section 3: Entities")
	r.Introduce(model.NewPerson("Alice", 30))
	r.Introduce(model.NewPerson("Bob", 15))

	r.section("Section 4: Inventory")
	r.p.Line("Initial Inventory:")
	r.p.Line(r.inv.String())
	r.Restock("apples", 10)
	r.Restock("kiwis", 25)
	r.p.Blank()
	r.p.Line("Final Inventory:")
	r.p.Line(r.inv.String())

	r.p.Blank()
	r.p.Title(EndBanner)
	r.log.Debug("demo finished", zap.Int("items", r.inv.Len()), zap.Int("total", r.inv.Total()))
	return nil
}

func (r *Runner) section(name string) {
	r.log.Debug("section", zap.String("name", name))
	r.p.Blank()
	r.p.Title("--- " + name + " ---")
}

// functionCalls guards both area calculations. The closing line is printed exactly once,
// after any caught error has been reported.
func (r *Runner) functionCalls() error {
	r.section("Section 1: Function Calls")
	defer r.p.Line("Calculation block finished.")

	err := r.calculate()
	if geometry.IsInvalidArgument(err) {
		r.log.Debug("caught invalid argument", zap.Error(err))
		r.p.Warn("Caught an expected error: " + err.Error())
		return nil
	}
	return err
}

func (r *Runner) calculate() error {
	if err := r.Area(demoRadius); err != nil {
		return err
	}
	return r.Area(invalidRadius)
}

// Area prints the area for radius or returns the calculation error untouched.
func (r *Runner) Area(radius float64) error {
	area, err := geometry.CalculateArea(radius)
	if err != nil {
		return err
	}
	r.p.Linef("The area of a circle with radius %.1f is %.2f", radius, area)
	return nil
}

// Fruits reports, per fruit, whether it contains marker (case-sensitive).
func (r *Runner) Fruits(marker string) {
	r.p.Line("Iterating over the fruit list:")
	for _, fruit := range model.Fruits() {
		if strings.Contains(fruit, marker) {
			r.p.Linef("- Found a fruit with '%s': %s", marker, fruit)
		} else {
			r.p.Linef("- %s does not contain '%s'.", fruit, marker)
		}
	}
}

func (r *Runner) Countdown(from int) {
	r.p.Line("Counting down:")
	counter := from
	for counter > 0 {
		r.p.Linef("Count: %d", counter)
		counter--
	}
}

// Introduce prints a person's info line followed by their age category.
func (r *Runner) Introduce(p model.Person) {
	r.p.Line(p.Info())
	if p.IsAdult() {
		r.p.Success(p.Name + " is an adult.")
	} else {
		r.p.Accent(p.Name + " is a minor.")
	}
}

// Restock runs Inventory.Process against the runner's inventory.
func (r *Runner) Restock(item string, qty int) *model.Inventory {
	inv := r.inv.Process(r.p.Out(), item, qty)
	total, _ := inv.Quantity(item)
	r.log.Debug("inventory updated", zap.String("item", item), zap.Int("added", qty), zap.Int("total", total))
	return inv
}
