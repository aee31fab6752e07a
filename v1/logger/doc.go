// Package logger provides the structured logging facility shared by every
// client in this SDK.
//
// It wraps Uber's Zap logger behind a small surface (Info, Debug, Warn,
// Error, Fatal) that takes a message, an optional error, and optional field
// maps. Components receive a *Logger at construction instead of mutating a
// global logger, so tests can observe log output by injecting a logger built
// on a zaptest observer core.
//
// # Direct usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "ingest-worker",
//	})
//	log.Info("starting", nil, nil)
//
// # FX integration
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(logger.NewConfig),
//	)
//
// Components that only need a default, silent logger (for example in unit
// tests) can use NewNop.
package logger
