// Streak Stats - GitHub Contribution Streak Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streakstats

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// GenerateRequestID returns a random UUID for X-Request-ID.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithRequestID attaches id to ctx and to the logger Ctx returns.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	l := Ctx(ctx).With().Str("request_id", id).Logger()
	return l.WithContext(ctx)
}

// RequestIDFromContext returns the request ID in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ContextWithLogger stores logger in ctx. Handlers use it to add fields
// such as the requested user to every later entry of the request.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, or the global logger.
//
//	logging.Ctx(ctx).Info().Str("user", user).Msg("Stats computed")
func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithComponent creates a child of the global logger with a component field.
//
//	ghLogger := logging.WithComponent("github")
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
