// Moodmap - Place Discovery, Mood Ranking and Map Clustering
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodmap

/*
Package logging wraps zerolog behind a process-wide logger.

Call Init once from main with the logging section of the configuration.
Before Init the logger writes JSON at info level to stderr.

	logging.Init(logging.Config{Level: "debug", Format: "console"})
	logging.Info().Str("addr", addr).Msg("listening")

Request-scoped code logs through Ctx, which attaches the request_id and
correlation_id stored in the context by the API middleware:

	logging.Ctx(r.Context()).Warn().Err(err).Msg("store unavailable")

Components that want their own fields take a zerolog.Logger by value,
usually from WithComponent:

	eng, err := engine.New(cat, cfg, logging.WithComponent("engine"))

NewSlogHandler adapts the logger to log/slog for sutureslog.
*/
package logging
