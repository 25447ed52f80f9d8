package replkit

import (
	"errors"
	"fmt"
	"testing"
)

// dispatchRegistry builds the registry used throughout the dispatcher
// tests, capturing handler arguments into the returned slice pointer.
func dispatchRegistry(t *testing.T) (*Registry, *[]Value) {
	t.Helper()
	var captured []Value
	capture := func(args []Value) (Status, error) {
		captured = args
		return Continue, nil
	}

	reg := NewRegistry()
	commands := []*Command{
		{
			Name: "greet",
			Args: []ArgSpec{
				{Name: "name", Type: TypeText},
				{Name: "age", Type: TypeInt},
			},
			Handler: capture,
		},
		{
			Name: "announce",
			Args: []ArgSpec{
				{Name: "name", Type: TypeText},
				{Name: "loud", Type: TypeBool, Optional: true},
			},
			Handler: capture,
		},
		{
			Name: "sum",
			Args: []ArgSpec{
				{Name: "xs", Type: TypeInt, Variadic: true},
			},
			Handler: capture,
		},
		{
			Name: "echo",
			Args: []ArgSpec{
				{Name: "words", Type: TypeText, Optional: true, Variadic: true},
			},
			Handler: capture,
		},
	}
	for _, cmd := range commands {
		if err := reg.Register(cmd); err != nil {
			t.Fatalf("Failed to register %q: %v", cmd.Name, err)
		}
	}
	return reg, &captured
}

func TestDispatchSuccess(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	status, err := reg.DispatchLine("greet Jane 30")
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}
	if status != Continue {
		t.Errorf("Expected Continue, got %v", status)
	}

	args := *captured
	if len(args) != 2 {
		t.Fatalf("Expected 2 arguments, got %d", len(args))
	}
	if args[0].Type != TypeText || args[0].Str != "Jane" {
		t.Errorf("Expected text value Jane, got %+v", args[0])
	}
	if args[1].Type != TypeInt || args[1].Int != 30 {
		t.Errorf("Expected int value 30, got %+v", args[1])
	}
}

func TestDispatchEmptyInput(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	for _, line := range []string{"", "   ", "\t"} {
		status, err := reg.DispatchLine(line)
		if err != nil || status != Continue {
			t.Errorf("Expected a no-op for %q, got (%v, %v)", line, status, err)
		}
		if *captured != nil {
			t.Errorf("Expected no handler invocation for %q", line)
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	reg, _ := dispatchRegistry(t)

	for _, line := range []string{"foo", "foo a b c"} {
		_, err := reg.DispatchLine(line)
		var unknown *UnknownCommandError
		if !errors.As(err, &unknown) {
			t.Fatalf("Expected UnknownCommandError for %q, got %v", line, err)
		}
		if unknown.Name != "foo" {
			t.Errorf("Expected name foo, got %q", unknown.Name)
		}
	}
}

func TestDispatchConversionError(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	_, err := reg.DispatchLine("greet Jane notanumber")
	var conv *ConversionError
	if !errors.As(err, &conv) {
		t.Fatalf("Expected ConversionError, got %v", err)
	}
	if conv.Index != 1 {
		t.Errorf("Expected argument index 1, got %d", conv.Index)
	}
	if conv.Raw != "notanumber" {
		t.Errorf("Expected raw text notanumber, got %q", conv.Raw)
	}
	if conv.Want != TypeInt {
		t.Errorf("Expected expected type int, got %s", conv.Want)
	}
	if *captured != nil {
		t.Error("Expected the handler not to be invoked on conversion failure")
	}
}

func TestDispatchArity(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	t.Run("TooFew", func(t *testing.T) {
		_, err := reg.DispatchLine("greet Jane")
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Fatalf("Expected ArityError, got %v", err)
		}
		if arity.Got != 1 || arity.Min != 2 || arity.Max != 2 {
			t.Errorf("Expected got=1 min=2 max=2, got %+v", arity)
		}
	})

	t.Run("TooMany", func(t *testing.T) {
		_, err := reg.DispatchLine("greet Jane 30 extra")
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Fatalf("Expected ArityError, got %v", err)
		}
		if arity.Got != 3 || arity.Max != 2 {
			t.Errorf("Expected got=3 max=2, got %+v", arity)
		}
	})

	t.Run("RequiredVariadicNeedsOne", func(t *testing.T) {
		_, err := reg.DispatchLine("sum")
		var arity *ArityError
		if !errors.As(err, &arity) {
			t.Fatalf("Expected ArityError, got %v", err)
		}
		if arity.Min != 1 || arity.Max != -1 {
			t.Errorf("Expected min=1 max=-1, got %+v", arity)
		}
	})

	t.Run("HandlerNotInvoked", func(t *testing.T) {
		if *captured != nil {
			t.Error("Expected no handler invocation on arity failures")
		}
	})
}

func TestDispatchOptional(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	if _, err := reg.DispatchLine("announce Jane"); err != nil {
		t.Fatalf("Dispatch without the optional argument failed: %v", err)
	}
	if len(*captured) != 1 {
		t.Errorf("Expected 1 argument, got %d", len(*captured))
	}

	if _, err := reg.DispatchLine("announce Jane yes"); err != nil {
		t.Fatalf("Dispatch with the optional argument failed: %v", err)
	}
	args := *captured
	if len(args) != 2 || args[1].Type != TypeBool || !args[1].Bool {
		t.Errorf("Expected a true boolean second argument, got %+v", args)
	}
}

func TestDispatchVariadic(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	if _, err := reg.DispatchLine("sum 1 2 3"); err != nil {
		t.Fatalf("Variadic dispatch failed: %v", err)
	}
	args := *captured
	if len(args) != 3 {
		t.Fatalf("Expected 3 arguments, got %d", len(args))
	}
	var total int64
	for _, v := range args {
		total += v.Int
	}
	if total != 6 {
		t.Errorf("Expected values summing to 6, got %d", total)
	}

	// An optional variadic accepts zero tokens.
	if _, err := reg.DispatchLine("echo"); err != nil {
		t.Fatalf("Optional variadic with zero tokens failed: %v", err)
	}
	if len(*captured) != 0 {
		t.Errorf("Expected no arguments, got %d", len(*captured))
	}
}

func TestDispatchQuitAndErrors(t *testing.T) {
	reg := NewRegistry()
	handlerErr := fmt.Errorf("something broke")

	commands := []*Command{
		{
			Name: "bye",
			Handler: func(args []Value) (Status, error) {
				return Quit, nil
			},
		},
		{
			Name: "fail",
			Handler: func(args []Value) (Status, error) {
				return Continue, handlerErr
			},
		},
	}
	for _, cmd := range commands {
		if err := reg.Register(cmd); err != nil {
			t.Fatalf("Failed to register %q: %v", cmd.Name, err)
		}
	}

	t.Run("QuitPropagates", func(t *testing.T) {
		status, err := reg.DispatchLine("bye")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if status != Quit {
			t.Errorf("Expected Quit, got %v", status)
		}
	})

	t.Run("HandlerErrorOpaque", func(t *testing.T) {
		status, err := reg.DispatchLine("fail")
		if !errors.Is(err, handlerErr) {
			t.Fatalf("Expected the handler error back, got %v", err)
		}
		if status != Continue {
			t.Errorf("Expected Continue, got %v", status)
		}
	})
}

func TestDispatchLineUnterminatedQuote(t *testing.T) {
	reg, captured := dispatchRegistry(t)

	_, err := reg.DispatchLine(`greet "Jane`)
	var quoteErr *UnterminatedQuoteError
	if !errors.As(err, &quoteErr) {
		t.Fatalf("Expected UnterminatedQuoteError, got %v", err)
	}
	if *captured != nil {
		t.Error("Expected no handler invocation on tokenization failure")
	}
}
