package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"draftr/content"
	"draftr/convert/txt"
	"draftr/misc"
	"draftr/model"
	"draftr/state"
)

// Run renders document as paginated plain text. Configuration and logger
// come from the environment carried by ctx.
func Run(ctx context.Context, doc *model.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log := state.EnvFromContext(ctx).Log.Named("convert")

	return render(ctx, log, func() (*content.Content, error) {
		return content.Prepare(ctx, doc, log)
	})
}

// Process reads YAML document from r and writes its rendering to w. Source
// may start with byte order mark of any UTF encoding.
func Process(ctx context.Context, r io.Reader, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := state.EnvFromContext(ctx).Log.Named("convert")

	src, enc, err := sniff(r)
	if err != nil {
		return err
	}
	log.Debug("Document source detected", zap.Stringer("encoding", enc))

	out, err := render(ctx, log, func() (*content.Content, error) {
		return content.Load(ctx, src, log)
	})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}

// render prepares content with load and generates text from it. Nothing in
// layout is expected to panic, if it does anyway the panic is reported as
// an error.
func render(ctx context.Context, log *zap.Logger, load func() (*content.Content, error)) (out string, rerr error) {
	env := state.EnvFromContext(ctx)
	if env.Cfg == nil {
		return "", errors.New("configuration has not been loaded")
	}

	var id string

	log.Info("Rendering starting", zap.String("version", misc.GetVersion()), zap.String("git", misc.GetGitHash()))
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Rendering ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("rendering panic: %v", r)
		} else if rerr == nil {
			log.Info("Rendering completed", zap.Duration("elapsed", time.Since(start)), zap.String("id", id), zap.Int("bytes", len(out)))
		}
	}(time.Now())

	c, err := load()
	if err != nil {
		return "", fmt.Errorf("unable to prepare document: %w", err)
	}
	id = c.ID.String()

	out, err = txt.Generate(ctx, c, env.Cfg, log.Named("txt"))
	if err != nil {
		return "", fmt.Errorf("unable to generate text (%s): %w", id, err)
	}
	return out, nil
}
