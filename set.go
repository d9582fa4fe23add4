// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

package boolexpr

// Sum returns the canonical disjunction of a sequence of products. An empty
// sum is Zero.
func Sum(products ...Product) Expression {
	if len(products) == 0 {
		return Zero()
	}
	res := NewExpression(products[0])
	for _, p := range products[1:] {
		res.AddProduct(p)
	}
	res.check()
	return res
}

// Mul returns the conjunction of a sequence of products. An empty
// conjunction is One.
func Mul(products ...Product) Product {
	res := NewLiteral(true)
	for _, p := range products {
		res = res.Times(p)
	}
	return res
}
