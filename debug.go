// Copyright (c) 2023 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package boolexpr

import (
	log "github.com/sirupsen/logrus"
)

// _DEBUG enables expression sanity checks after every public operation and
// the tracing of the simplification pass.
const _DEBUG bool = true

func init() {
	log.SetLevel(log.TraceLevel)
}
