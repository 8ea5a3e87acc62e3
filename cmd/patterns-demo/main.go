package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sunfmin/mcp-go-patterns/pkg/calculator"
	"github.com/sunfmin/mcp-go-patterns/pkg/config"
	"github.com/sunfmin/mcp-go-patterns/pkg/logger"
	"github.com/sunfmin/mcp-go-patterns/pkg/singleton"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)

	d := cfg.Demo
	result, err := calculator.Calculate(d.X, d.Y, d.Selector)
	if err != nil {
		fmt.Println(color.HiRedString("%g %s %g failed: %v", d.X, d.Selector, d.Y, err))
	} else {
		fmt.Println(color.CyanString("%g %s %g =", d.X, d.Selector, d.Y), color.GreenString("%g", result))
	}

	for _, info := range singleton.Variants() {
		first, err := info.Get()
		if err != nil {
			fmt.Println(color.HiRedString("%-15s failed: %v", info.Variant, err))
			continue
		}
		second, _ := info.Get()

		same := color.GreenString("same instance")
		if first != second {
			same = color.YellowString("different instances")
		}
		fmt.Println(color.BlueString("%-15s", info.Variant), same, first.ID)
	}

	singleton.Default.SetName("demo")
	fmt.Println(color.BlueString("%-15s", "say_hello"), singleton.Default.Name(), singleton.Default.SayHello())
}
