// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"fmt"
	"html"
	"strings"
)

// format writes the product as the catenation of its variable names, where
// name maps a variable slot to its display name. A negated variable is
// marked with a quote suffix in text mode, and wrapped in an overline (an
// underlined element, with the name HTML-escaped) in HTML mode. The
// constants print as "0" and "1".
func (p Product) format(name func(uint32) string, useHTML bool) string {
	if p.IsLiteral() {
		if p.IsOne() {
			return "1"
		}
		return "0"
	}
	var buf strings.Builder
	for id := uint32(0); id < MaxVariables; id++ {
		bit := mask(1) << id
		if p.variables&bit != 0 {
			continue
		}
		negated := p.negation&bit != 0
		switch {
		case useHTML && negated:
			buf.WriteString("<u>" + html.EscapeString(name(id)) + "</u>")
		case useHTML:
			buf.WriteString(html.EscapeString(name(id)))
		case negated:
			buf.WriteString(name(id) + "'")
		default:
			buf.WriteString(name(id))
		}
	}
	return buf.String()
}

func (e Expression) format(name func(uint32) string, useHTML bool) string {
	sep := " + "
	if useHTML {
		sep = "+"
	}
	var buf strings.Builder
	for k, term := range e.terms {
		if k > 0 {
			buf.WriteString(sep)
		}
		buf.WriteString(term.format(name, useHTML))
	}
	return buf.String()
}

// slotname is the display name used when no Context is available.
func slotname(id uint32) string {
	return fmt.Sprintf("x%d", id)
}

// String returns a textual form of the product using generic variable names
// x0, x1, ... and a quote to mark negations, for instance "x0x2'". Use the
// Sprint methods of Context to print registered variable names instead.
func (p Product) String() string {
	return p.format(slotname, false)
}

// String returns the terms of the sum joined with " + ", using generic
// variable names; the constants print as "0" and "1".
func (e Expression) String() string {
	return e.format(slotname, false)
}

// name returns the display name of a variable slot, looking it up in the
// registry.
func (c *Context) name(id uint32) string {
	return c.Data(Variable{id: id}).name
}

// SprintProduct returns the textual form of p with the variable names
// registered in c, negations marked with a quote.
func (c *Context) SprintProduct(p Product) string {
	return p.format(c.name, false)
}

// Sprint returns the textual form of e with the variable names registered in
// c, negations marked with a quote.
func (c *Context) Sprint(e Expression) string {
	return e.format(c.name, false)
}

// HTMLProduct returns an HTML rendering of p, with names escaped and negated
// variables overlined (underline markup).
func (c *Context) HTMLProduct(p Product) string {
	return p.format(c.name, true)
}

// HTML returns an HTML rendering of e, with names escaped and negated
// variables overlined (underline markup).
func (c *Context) HTML(e Expression) string {
	return e.format(c.name, true)
}
