package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"replkit"
)

// registerCommands populates the demo command set.
func registerCommands(reg *replkit.Registry) error {
	httpClient := resty.New()
	httpClient.SetTimeout(10 * time.Second)

	commands := []*replkit.Command{
		{
			Name:        "count",
			Description: "Count from one integer to another, inclusive",
			Args: []replkit.ArgSpec{
				{Name: "from", Type: replkit.TypeInt},
				{Name: "to", Type: replkit.TypeInt},
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				from, to := args[0].Int, args[1].Int
				if to < from {
					return replkit.Continue, fmt.Errorf("cannot count from %d down to %d", from, to)
				}
				for i := from; i <= to; i++ {
					fmt.Printf(" %d", i)
				}
				fmt.Println()
				return replkit.Continue, nil
			},
		},
		{
			Name:        "say",
			Description: "Print a floating-point value",
			Args: []replkit.ArgSpec{
				{Name: "x", Type: replkit.TypeFloat},
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				fmt.Printf("x is equal to %v\n", args[0].Float)
				return replkit.Continue, nil
			},
		},
		{
			Name:        "greet",
			Description: "Greet someone, optionally mentioning their age",
			Args: []replkit.ArgSpec{
				{Name: "name", Type: replkit.TypeText},
				{Name: "age", Type: replkit.TypeInt, Optional: true},
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				if len(args) == 2 {
					fmt.Printf("Hello, %s! %d is a fine age.\n", args[0].Str, args[1].Int)
				} else {
					fmt.Printf("Hello, %s!\n", args[0].Str)
				}
				return replkit.Continue, nil
			},
		},
		{
			Name:        "sum",
			Description: "Add up one or more integers",
			Args: []replkit.ArgSpec{
				{Name: "xs", Type: replkit.TypeInt, Variadic: true},
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				var total int64
				for _, v := range args {
					total += v.Int
				}
				fmt.Println(total)
				return replkit.Continue, nil
			},
		},
		{
			Name:        "verbose",
			Description: "Toggle verbose output",
			Args: []replkit.ArgSpec{
				{Name: "enabled", Type: replkit.TypeBool},
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				if args[0].Bool {
					fmt.Println("verbose output enabled")
				} else {
					fmt.Println("verbose output disabled")
				}
				return replkit.Continue, nil
			},
		},
		{
			Name:        "mode",
			Description: "Switch the output mode",
			Args: []replkit.ArgSpec{
				{Name: "level", Type: replkit.TypeText},
			},
			Complete: func(arg int, prefix string) []string {
				return []string{"debug", "info", "quiet"}
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				switch args[0].Str {
				case "debug", "info", "quiet":
					fmt.Printf("mode set to %s\n", args[0].Str)
					return replkit.Continue, nil
				default:
					return replkit.Continue, fmt.Errorf("unknown mode %q", args[0].Str)
				}
			},
		},
		{
			Name:        "fetch",
			Description: "Fetch a URL and report the response status and size",
			Args: []replkit.ArgSpec{
				{Name: "url", Type: replkit.TypeText},
			},
			Handler: func(args []replkit.Value) (replkit.Status, error) {
				resp, err := httpClient.R().Get(args[0].Str)
				if err != nil {
					return replkit.Continue, fmt.Errorf("request failed: %v", err)
				}
				fmt.Printf("%s (%d bytes)\n", resp.Status(), len(resp.Body()))
				return replkit.Continue, nil
			},
		},
	}

	for _, cmd := range commands {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}
