// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

import (
	"fmt"
	"sync"
)

// A Variable is an opaque handle for an indeterminate Boolean variable.
// Variables are created with the CreateVariable method of a Context, which is
// also where their name and user id are recorded. The zero value of Variable
// is the first variable created in a context.
type Variable struct {
	id uint32
}

// ID returns the slot index of the variable, a small integer in the interval
// [0..MaxVariables) reflecting creation order. It carries no logical meaning;
// it only provides a fixed total order used for canonicalization.
func (v Variable) ID() int {
	return int(v.id)
}

// Not returns the product containing only the negation of v.
func (v Variable) Not() Product {
	return NewProduct(v, true)
}

// VariableData is the information recorded about a variable when it is
// created: a human readable name, which does not have to be unique, and an
// optional user provided id that lets the calling program recognize what the
// variable stands for.
type VariableData struct {
	name   string
	userID int
}

// Name returns the human readable name of the variable.
func (d VariableData) Name() string { return d.name }

// UserID returns the user provided id of the variable.
func (d VariableData) UserID() int { return d.userID }

func (d VariableData) String() string {
	return fmt.Sprintf("{%d, %s}", d.userID, d.name)
}

// A Context is a registry of Boolean variables. It owns the counter used to
// hand out variable slots, so that two contexts can be used independently;
// variables created in different contexts must not be mixed in the same
// product. Creation and lookup are safe for concurrent use. Slots are never
// reused during the lifetime of a context.
type Context struct {
	mu        sync.Mutex
	variables []VariableData // data for variable id k at index k
}

// NewContext returns an empty variable registry.
func NewContext() *Context {
	return &Context{}
}

// CreateVariable registers a fresh variable with the given name and user id.
// It panics when the MaxVariables available slots are exhausted.
func (c *Context) CreateVariable(name string, userID int) Variable {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.variables) >= MaxVariables {
		panic(fmt.Sprintf("boolexpr: cannot create variable %q, all %d slots are in use", name, MaxVariables))
	}
	v := Variable{id: uint32(len(c.variables))}
	c.variables = append(c.variables, VariableData{name: name, userID: userID})
	return v
}

// Declare is a convenience around CreateVariable that registers one variable
// per name, with a zero user id, and returns the handles in the same order.
func (c *Context) Declare(names ...string) []Variable {
	res := make([]Variable, len(names))
	for k, name := range names {
		res[k] = c.CreateVariable(name, 0)
	}
	return res
}

// Varnum returns the number of variables created in the context.
func (c *Context) Varnum() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.variables)
}

// Data returns the information recorded for variable v. It panics when v was
// not created with CreateVariable on this context; this is always a
// programming error.
func (c *Context) Data(v Variable) VariableData {
	c.mu.Lock()
	defer c.mu.Unlock()
	if int(v.id) >= len(c.variables) {
		panic(fmt.Sprintf("boolexpr: variable %d was not created in this context", v.id))
	}
	return c.variables[v.id]
}
