// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// +build debug

package bdd

import "go.uber.org/zap"

func init() {
	defaultLevel.SetLevel(zap.DebugLevel)
}
