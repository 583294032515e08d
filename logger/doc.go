// Package logger provides structured logging for parsekit built on zerolog.
//
// The binding and transport packages take a *Logger; callers that do not
// care can pass nil and the package-level global logger is used instead.
//
//	log := logger.NewDefault("myapp")
//	log.WithComponent("restapi").Info("object fetched", logger.Fields("objectId", id))
package logger
