// Package state defines shared program state.
package state

import (
	"context"
	"time"

	"go.uber.org/zap"

	"draftr/config"
)

type envKey struct{}

// LocalEnv keeps everything program needs in a single place.
type LocalEnv struct {
	Cfg *config.Config
	Log *zap.Logger

	// Now supplies publication date for documents which do not have one.
	Now func() time.Time
	// DefaultBoilerplate is text/template source used when configuration
	// does not provide its own.
	DefaultBoilerplate string

	start         time.Time
	restoreStdLog func()
}

func EnvFromContext(ctx context.Context) *LocalEnv {
	if env, ok := ctx.Value(envKey{}).(*LocalEnv); ok {
		return env
	}
	// this should never happen
	panic("localenv not found in context")
}

func ContextWithEnv(ctx context.Context) context.Context {
	return context.WithValue(ctx, envKey{}, newLocalEnv())
}

// Boilerplate returns status and copyright template to use for rendering.
func (e *LocalEnv) Boilerplate() string {
	if e.Cfg != nil && len(e.Cfg.Document.BoilerplateTemplate) > 0 {
		return e.Cfg.Document.BoilerplateTemplate
	}
	return e.DefaultBoilerplate
}

func (e *LocalEnv) Uptime() time.Duration {
	return time.Since(e.start)
}

func (e *LocalEnv) RedirectStdLog() {
	if e.Log == nil {
		return
	}
	e.restoreStdLog = zap.RedirectStdLog(e.Log)
}

func (e *LocalEnv) RestoreStdLog() {
	if e.Log != nil {
		_ = e.Log.Sync()
	}
	if e.restoreStdLog != nil {
		e.restoreStdLog()
	}
}
