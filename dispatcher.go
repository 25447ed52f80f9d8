package replkit

// Dispatch resolves the first token against the registry, validates arity,
// converts the remaining tokens positionally and invokes the handler.
// Empty input is a successful no-op. The dispatcher itself performs no side
// effects beyond the handler invocation.
func (r *Registry) Dispatch(tokens []Token) (Status, error) {
	if len(tokens) == 0 {
		return Continue, nil
	}

	name := tokens[0].Text
	cmd, ok := r.Lookup(name)
	if !ok {
		return Continue, &UnknownCommandError{Name: name}
	}

	args := tokens[1:]
	min, max := cmd.arity()
	if len(args) < min || (max >= 0 && len(args) > max) {
		return Continue, &ArityError{Command: name, Got: len(args), Min: min, Max: max}
	}

	values := make([]Value, 0, len(args))
	next := 0
	for _, spec := range cmd.Args {
		if spec.Variadic {
			for ; next < len(args); next++ {
				v, err := Convert(args[next].Text, spec.Type)
				if err != nil {
					return Continue, &ConversionError{
						Command: name, Index: next, Raw: args[next].Text, Want: spec.Type,
					}
				}
				values = append(values, v)
			}
			break
		}
		if next >= len(args) {
			break // unfilled optional tail
		}
		v, err := Convert(args[next].Text, spec.Type)
		if err != nil {
			return Continue, &ConversionError{
				Command: name, Index: next, Raw: args[next].Text, Want: spec.Type,
			}
		}
		values = append(values, v)
		next++
	}

	return cmd.Handler(values)
}

// DispatchLine tokenizes a raw line and dispatches it. Tokenization
// failures are returned without consulting the registry.
func (r *Registry) DispatchLine(line string) (Status, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Continue, err
	}
	return r.Dispatch(tokens)
}
