// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "go.uber.org/zap"

// defaultLevel is raised to zap.DebugLevel by debug.go when built with the
// `debug` tag; otherwise the package stays quiet by default, mirroring the
// teacher's own `_DEBUG`-gated verbosity in debug.go.
var defaultLevel = zap.NewAtomicLevelAt(zap.WarnLevel)

func newDefaultLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = defaultLevel
	logger, err := cfg.Build()
	if err != nil {
		// zap.NewProductionConfig().Build() only fails on a broken sink/encoder
		// configuration, which cannot happen with the defaults used here.
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
