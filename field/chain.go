package field

// Chain wraps a Field with fluent construction methods so trees read
// top-to-bottom at the call site. Chain itself implements Field, so a
// chain may be used anywhere a node is expected; when a Chain is passed
// as an operand it is unwrapped first, so chained and direct
// construction produce identical trees.
//
// Every combinator offers three call-site flavors:
//
//   - direct:            c.Add(other)
//   - literal:           c.AddValue(3) — wraps the number in a Constant
//   - deferred factory:  c.AddFunc(func() Field { ... }) — the factory
//     runs once, immediately, during chaining; it exists for closure-
//     bodied composition ergonomics, not laziness.
type Chain struct {
	f Field
}

// From starts a chain from an existing field.
func From(f Field) Chain { return Chain{f: unwrap(f)} }

// FromValue starts a chain from a constant value.
func FromValue(v float64) Chain { return Chain{f: Constant{Value: v}} }

// Unwrap returns the underlying field tree.
func (c Chain) Unwrap() Field { return c.f }

// Evaluate implements Field by delegating to the wrapped tree.
func (c Chain) Evaluate(x, y, z float64) (float64, error) {
	return c.f.Evaluate(x, y, z)
}

// unwrap strips a Chain operand down to its tree so that chained and
// direct construction are indistinguishable.
func unwrap(f Field) Field {
	if c, ok := f.(Chain); ok {
		return c.f
	}

	return f
}

// Add wraps the chain and other in an Add node.
func (c Chain) Add(other Field) Chain {
	return Chain{f: Add{First: c.f, Second: unwrap(other)}}
}

// AddValue adds a constant.
func (c Chain) AddValue(v float64) Chain { return c.Add(Constant{Value: v}) }

// AddFunc adds the field built by fn, invoked once at chaining time.
func (c Chain) AddFunc(fn func() Field) Chain { return c.Add(fn()) }

// Subtract wraps the chain and other in a Subtract node (chain minus other).
func (c Chain) Subtract(other Field) Chain {
	return Chain{f: Subtract{First: c.f, Second: unwrap(other)}}
}

// SubtractValue subtracts a constant.
func (c Chain) SubtractValue(v float64) Chain { return c.Subtract(Constant{Value: v}) }

// SubtractFunc subtracts the field built by fn, invoked once at chaining time.
func (c Chain) SubtractFunc(fn func() Field) Chain { return c.Subtract(fn()) }

// Multiply wraps the chain and other in a Multiply node.
func (c Chain) Multiply(other Field) Chain {
	return Chain{f: Multiply{First: c.f, Second: unwrap(other)}}
}

// MultiplyValue multiplies by a constant.
func (c Chain) MultiplyValue(v float64) Chain { return c.Multiply(Constant{Value: v}) }

// MultiplyFunc multiplies by the field built by fn, invoked once at chaining time.
func (c Chain) MultiplyFunc(fn func() Field) Chain { return c.Multiply(fn()) }

// Min wraps the chain and other in a Min node.
func (c Chain) Min(other Field) Chain {
	return Chain{f: Min{First: c.f, Second: unwrap(other)}}
}

// MinValue takes the minimum against a constant.
func (c Chain) MinValue(v float64) Chain { return c.Min(Constant{Value: v}) }

// MinFunc takes the minimum against the field built by fn.
func (c Chain) MinFunc(fn func() Field) Chain { return c.Min(fn()) }

// Max wraps the chain and other in a Max node.
func (c Chain) Max(other Field) Chain {
	return Chain{f: Max{First: c.f, Second: unwrap(other)}}
}

// MaxValue takes the maximum against a constant.
func (c Chain) MaxValue(v float64) Chain { return c.Max(Constant{Value: v}) }

// MaxFunc takes the maximum against the field built by fn.
func (c Chain) MaxFunc(fn func() Field) Chain { return c.Max(fn()) }

// Abs wraps the chain in an Abs node.
func (c Chain) Abs() Chain { return Chain{f: Abs{Source: c.f}} }

// Pow wraps the chain in an Exp node with the given exponent field.
func (c Chain) Pow(exponent Field) Chain {
	return Chain{f: Exp{Base: c.f, Exponent: unwrap(exponent)}}
}

// PowValue raises to a constant exponent.
func (c Chain) PowValue(v float64) Chain { return c.Pow(Constant{Value: v}) }

// PowFunc raises to the exponent field built by fn.
func (c Chain) PowFunc(fn func() Field) Chain { return c.Pow(fn()) }

// Blend interpolates between the chain and other under control: the
// chain is First (selected at control -1), other is Second (selected at
// control +1).
func (c Chain) Blend(other, control Field) Chain {
	return Chain{f: Blend{Control: unwrap(control), First: c.f, Second: unwrap(other)}}
}

// BlendFunc interpolates using the (other, control) pair built by fn.
func (c Chain) BlendFunc(fn func() (other, control Field)) Chain {
	other, control := fn()

	return c.Blend(other, control)
}

// Clamp restricts the chain into the field-valued range [lower, upper].
func (c Chain) Clamp(lower, upper Field) Chain {
	return Chain{f: Clamped{Source: c.f, Lower: unwrap(lower), Upper: unwrap(upper)}}
}

// ClampValues restricts the chain into the constant range [lower, upper].
func (c Chain) ClampValues(lower, upper float64) Chain {
	return c.Clamp(Constant{Value: lower}, Constant{Value: upper})
}

// ClampFunc restricts the chain into the (lower, upper) range built by fn.
func (c Chain) ClampFunc(fn func() (lower, upper Field)) Chain {
	lower, upper := fn()

	return c.Clamp(lower, upper)
}

// Displace samples the chain at the coordinate produced by the three
// displacement fields, each evaluated at the original query point.
func (c Chain) Displace(dx, dy, dz Field) Chain {
	return Chain{f: Displace{Source: c.f, X: unwrap(dx), Y: unwrap(dy), Z: unwrap(dz)}}
}

// DisplaceFunc displaces through the (dx, dy, dz) triple built by fn.
func (c Chain) DisplaceFunc(fn func() (dx, dy, dz Field)) Chain {
	dx, dy, dz := fn()

	return c.Displace(dx, dy, dz)
}
