package state

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"draftr/config"
	"draftr/misc"
)

// newLocalEnv creates a new LocalEnv instance with default values
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start:              time.Now(),
		Now:                time.Now,
		DefaultBoilerplate: trust200902,
	}
}

// Initialize returns context carrying environment ready for rendering:
// configuration is loaded from configFile (built-in defaults when it is
// empty) and logging is set up according to it. Standard library logger is
// redirected until Destroy is called.
func Initialize(ctx context.Context, configFile string, verbose bool) (context.Context, error) {
	var err error

	ctx = ContextWithEnv(ctx)
	env := EnvFromContext(ctx)

	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if env.Log, err = env.Cfg.Logging.Prepare(verbose); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if len(configFile) == 0 {
		env.Log.Info("Using defaults (no configuration file)")
		return ctx, nil
	}
	if data, err := config.Dump(env.Cfg); err == nil {
		env.Log.Debug("Effective configuration", zap.String("file", configFile), zap.ByteString("yaml", data))
	}
	return ctx, nil
}

// Destroy flushes logs and restores standard library logger.
func Destroy(ctx context.Context) {
	env := EnvFromContext(ctx)
	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()))
	}
	env.RestoreStdLog()
}

// trust200902 is status and copyright text for documents submitted under
// BCP 78 and BCP 79. Blank lines separate groups which are never split
// between pages, a group made of single heading line sticks to the next one.
const trust200902 = `Status of this Memo

   This Internet-Draft is submitted in full conformance with the
   provisions of BCP 78 and BCP 79.

   Internet-Drafts are working documents of the Internet Engineering
   Task Force (IETF).  Note that other groups may also distribute
   working documents as Internet-Drafts.  The list of current Internet-
   Drafts is at http://datatracker.ietf.org/drafts/current/.

   Internet-Drafts are draft documents valid for a maximum of six months
   and may be updated, replaced, or obsoleted by other documents at any
   time.  It is inappropriate to use Internet-Drafts as reference
   material or to cite them other than as "work in progress."

   This Internet-Draft will expire on {{ .Expires }}.

Copyright Notice

   Copyright (c) {{ dateInZone "2006" .Date "UTC" }} IETF Trust and the persons identified as the
   document authors.  All rights reserved.

   This document is subject to BCP 78 and the IETF Trust's Legal
   Provisions Relating to IETF Documents
   (http://trustee.ietf.org/license-info) in effect on the date of
   publication of this document.  Please review these documents
   carefully, as they describe your rights and restrictions with respect
   to this document.  Code Components extracted from this document must
   include Simplified BSD License text as described in Section 4.e of
   the Trust Legal Provisions and are provided without warranty as
   described in the Simplified BSD License.
`
