package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/inventorydemo/internal/demo"
	"github.com/idilsaglam/inventorydemo/internal/geometry"
	"github.com/idilsaglam/inventorydemo/internal/logging"
	"github.com/idilsaglam/inventorydemo/internal/model"
	"github.com/idilsaglam/inventorydemo/internal/store/jsonstore"
	"github.com/idilsaglam/inventorydemo/internal/tui"
	"github.com/idilsaglam/inventorydemo/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Theme      string
	NoColor    bool
	ForceColor bool
	LogLevel   string
	SeedPath   string // optional JSON inventory seed

	// Overrides, mostly for tests. Nil means os.Stdout, os.Stderr and a logger built from LogLevel.
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

type app struct {
	p   *ui.Printer
	log *zap.Logger
	opt Options
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no arguments it runs the demonstration.
func Run(args []string, opt Options) int {
	stdout, stderr := opt.Stdout, opt.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	p := ui.NewPrinter(stdout, stderr, ui.Options{
		Theme:      opt.Theme,
		ForceColor: opt.ForceColor,
		NoColor:    opt.NoColor,
	})

	cmd, a := "run", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}

	log := opt.Logger
	if log == nil {
		var err error
		if log, err = logging.New(opt.LogLevel); err != nil {
			p.Fail(err.Error())
			return 2
		}
		defer func() { _ = log.Sync() }()
	}
	log = log.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd))

	x := &app{p: p, log: log, opt: opt}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(stdout)
		return 0

	case "run":
		return x.doRun()

	case "area":
		if len(a) != 1 {
			p.Fail("usage: inventorydemo area <radius>")
			return 2
		}
		r, err := strconv.ParseFloat(a[0], 64)
		if err != nil {
			p.Fail("area: not a number: " + a[0])
			return 2
		}
		return x.doArea(r)

	case "person":
		if len(a) < 2 {
			p.Fail("usage: inventorydemo person <name...> <age>")
			return 2
		}
		age, err := strconv.Atoi(a[len(a)-1])
		if err != nil {
			p.Fail("person: age is not a number: " + a[len(a)-1])
			return 2
		}
		return x.doPerson(strings.Join(a[:len(a)-1], " "), age)

	case "fruits":
		if len(a) > 1 {
			p.Fail("usage: inventorydemo fruits [substring]")
			return 2
		}
		marker := "e"
		if len(a) == 1 {
			marker = a[0]
		}
		x.runner(nil).Fruits(marker)
		return 0

	case "countdown":
		if len(a) > 1 {
			p.Fail("usage: inventorydemo countdown [n]")
			return 2
		}
		n := 5
		if len(a) == 1 {
			v, err := strconv.Atoi(a[0])
			if err != nil {
				p.Fail("countdown: not a number: " + a[0])
				return 2
			}
			n = v
		}
		x.runner(nil).Countdown(n)
		return 0

	case "inventory":
		if len(a)%2 != 0 {
			p.Fail("usage: inventorydemo inventory [<item> <qty>]...")
			return 2
		}
		return x.doInventory(a)

	case "consts":
		p.Linef("Pi = %v", model.Pi)
		p.Linef("EulerNumber = %v", model.EulerNumber)
		return 0

	case "browse":
		return x.doBrowse()
	}

	p.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(stderr)
	PrintHelp(stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `inventorydemo - inventory and geometry demonstration

Usage:
  inventorydemo [flags] [subcommand] [args]

Subcommands:
  run                       Run the full demonstration (default)
  area <radius>             Area of a circle
  person <name...> <age>    Show a person and their age category
  fruits [substring]        Check each fruit for a substring (default "e")
  countdown [n]             Count down from n (default 5)
  inventory [<item> <qty>]  Apply updates, then show the inventory
  consts                    Print the numeric constants
  browse                    Interactive inventory browser

Flags:
  --theme classic|neon|mono   Colour theme
  --no-color                  Never style output
  --force-color               Style output even when not a terminal
  --log-level LEVEL           stderr log level: debug, info, warn, error (default warn)
  --inventory FILE            JSON file with the starting inventory

Examples:
  inventorydemo
  inventorydemo area 2.5
  inventorydemo inventory apples 10 kiwis 25
`)
}

// -------------- subcommand impls ----------------

func (x *app) loadInventory() (*model.Inventory, error) {
	if x.opt.SeedPath == "" {
		return model.DefaultInventory(), nil
	}
	inv, err := jsonstore.LoadInventory(x.opt.SeedPath)
	if err != nil {
		return nil, fmt.Errorf("load inventory %s: %w", x.opt.SeedPath, err)
	}
	x.log.Debug("inventory seeded", zap.String("path", x.opt.SeedPath), zap.Int("items", inv.Len()))
	return inv, nil
}

func (x *app) runner(inv *model.Inventory) *demo.Runner {
	opts := []demo.Option{demo.WithLogger(x.log)}
	if inv != nil {
		opts = append(opts, demo.WithInventory(inv))
	}
	return demo.NewRunner(x.p, opts...)
}

func (x *app) doRun() int {
	inv, err := x.loadInventory()
	if err != nil {
		x.p.Fail(err.Error())
		return 1
	}
	if err := x.runner(inv).Run(); err != nil {
		x.log.Error("demo failed", zap.Error(err))
		x.p.Fail(err.Error())
		return 1
	}
	return 0
}

func (x *app) doArea(radius float64) int {
	err := x.runner(nil).Area(radius)
	if err == nil {
		return 0
	}
	if geometry.IsInvalidArgument(err) {
		x.log.Warn("area rejected", zap.Float64("radius", radius), zap.Error(err))
	}
	x.p.Fail("area: " + err.Error())
	return 1
}

func (x *app) doPerson(name string, age int) int {
	x.runner(nil).Introduce(model.NewPerson(name, age))
	return 0
}

func (x *app) doInventory(pairs []string) int {
	inv, err := x.loadInventory()
	if err != nil {
		x.p.Fail(err.Error())
		return 1
	}
	r := x.runner(inv)
	for i := 0; i < len(pairs); i += 2 {
		qty, err := strconv.Atoi(pairs[i+1])
		if err != nil {
			x.p.Fail("inventory: not a number: " + pairs[i+1])
			return 2
		}
		r.Restock(pairs[i], qty)
	}
	x.p.Panel(x.inventoryLines(inv))
	return 0
}

func (x *app) doBrowse() int {
	inv, err := x.loadInventory()
	if err != nil {
		x.p.Fail(err.Error())
		return 1
	}
	if err := tui.Run(inv); err != nil {
		x.log.Error("browser failed", zap.Error(err))
		x.p.Fail("browse: " + err.Error())
		return 1
	}
	x.p.Line("Final Inventory:")
	x.p.Line(inv.String())
	return 0
}

// -------------- rendering helpers --------------

func (x *app) inventoryLines(inv *model.Inventory) []string {
	entries := inv.Entries()
	total := inv.Total()

	width := 0
	for _, e := range entries {
		if len(e.Item) > width {
			width = len(e.Item)
		}
	}

	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d",
			x.p.TitleText("Inventory"),
			x.p.AccentText("Items"), len(entries),
			x.p.AccentText("Total"), total),
		"",
	}
	if len(entries) == 0 {
		return append(lines, x.p.MutedText("no items"))
	}
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%-*s %6d  %s",
			width, e.Item, e.Quantity, x.p.MutedText(x.p.Bar(e.Quantity, total, 20))))
	}
	return lines
}
