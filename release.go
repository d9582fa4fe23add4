// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package boolexpr

const _DEBUG bool = false
