// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lsirikh/GopApiServer/internal/telemetry"
)

// TokenState classifies the credentials presented with a request.
type TokenState int

// Token states.
const (
	// TokenAbsent means no Authorization header was sent.
	TokenAbsent TokenState = iota
	// TokenInvalid covers a malformed header, a bad signature, a wrong
	// algorithm and an expired token.
	TokenInvalid
	// TokenUnknownSubject is a valid token naming no stored principal.
	TokenUnknownSubject
	// TokenValid is a valid token naming a stored principal.
	TokenValid
)

// String returns the state name.
func (s TokenState) String() string {
	switch s {
	case TokenAbsent:
		return "absent"
	case TokenInvalid:
		return "invalid"
	case TokenUnknownSubject:
		return "unknown_subject"
	case TokenValid:
		return "valid"
	}

	return fmt.Sprintf("TokenState(%d)", int(s))
}

// Outcome is the result of a transition.
type Outcome string

// Outcomes.
const (
	OutcomeAnonymous    Outcome = "anonymous"
	OutcomePrincipal    Outcome = "principal"
	OutcomeUnauthorized Outcome = "unauthorized"
)

// Transition is one named row of the access table.
type Transition struct {
	Name    string
	Outcome Outcome
}

// transitions is the access table keyed by mode and token state.
var transitions = map[AccessMode]map[TokenState]Transition{
	AccessModeRequired: {
		TokenAbsent:         {Name: "required_missing_token", Outcome: OutcomeUnauthorized},
		TokenInvalid:        {Name: "required_invalid_token", Outcome: OutcomeUnauthorized},
		TokenUnknownSubject: {Name: "required_unknown_subject", Outcome: OutcomeUnauthorized},
		TokenValid:          {Name: "required_authenticated", Outcome: OutcomePrincipal},
	},
	AccessModeOpen: {
		TokenAbsent:         {Name: "open_anonymous", Outcome: OutcomeAnonymous},
		TokenInvalid:        {Name: "open_fail_open_invalid_token", Outcome: OutcomeAnonymous},
		TokenUnknownSubject: {Name: "open_fail_open_unknown_subject", Outcome: OutcomeAnonymous},
		TokenValid:          {Name: "open_authenticated", Outcome: OutcomePrincipal},
	},
}

// TransitionFor returns the table row for mode and state.
func TransitionFor(
	mode AccessMode,
	state TokenState,
) (Transition, bool) {
	t, ok := transitions[mode][state]
	return t, ok
}

// Resolution is the admitted caller. Principal is nil for anonymous access.
type Resolution struct {
	Principal  *Principal
	Transition string
}

// Anonymous reports whether no principal was resolved.
func (r Resolution) Anonymous() bool {
	return r.Principal == nil
}

// Resolver resolves the calling principal from an Authorization header.
type Resolver struct {
	logger      *slog.Logger
	mode        AccessMode
	store       PrincipalStore
	codec       TokenCodec
	instruments *telemetry.Instruments
}

// NewResolver creates a Resolver for mode. instruments may be nil.
func NewResolver(
	logger *slog.Logger,
	mode AccessMode,
	store PrincipalStore,
	codec TokenCodec,
	instruments *telemetry.Instruments,
) *Resolver {
	return &Resolver{
		logger:      logger,
		mode:        mode,
		store:       store,
		codec:       codec,
		instruments: instruments,
	}
}

// Mode returns the configured access mode.
func (r *Resolver) Mode() AccessMode {
	return r.mode
}

// Resolve applies the configured mode. It returns ErrUnauthorized when the
// request must be rejected, and a wrapped store error when the credential
// store fails.
func (r *Resolver) Resolve(
	ctx context.Context,
	authorization string,
) (Resolution, error) {
	return r.resolve(ctx, r.mode, authorization)
}

// Authenticate resolves as in required mode regardless of configuration.
func (r *Resolver) Authenticate(
	ctx context.Context,
	authorization string,
) (*Principal, error) {
	res, err := r.resolve(ctx, AccessModeRequired, authorization)
	if err != nil {
		return nil, err
	}

	return res.Principal, nil
}

func (r *Resolver) resolve(
	ctx context.Context,
	mode AccessMode,
	authorization string,
) (Resolution, error) {
	state, principal, err := r.classify(ctx, authorization)
	if err != nil {
		r.instruments.Resolved(ctx, string(mode), "error")
		return Resolution{}, err
	}

	t, ok := TransitionFor(mode, state)
	if !ok {
		return Resolution{}, fmt.Errorf("no access transition for mode %q state %s", mode, state)
	}

	r.instruments.Resolved(ctx, string(mode), string(t.Outcome))
	r.logger.Debug(
		"access resolved",
		slog.String("mode", string(mode)),
		slog.String("token", state.String()),
		slog.String("transition", t.Name),
	)

	switch t.Outcome {
	case OutcomePrincipal:
		return Resolution{Principal: principal, Transition: t.Name}, nil
	case OutcomeAnonymous:
		return Resolution{Transition: t.Name}, nil
	default:
		return Resolution{Transition: t.Name}, ErrUnauthorized
	}
}

// classify determines the token state. Only a credential store failure
// is returned as an error.
func (r *Resolver) classify(
	ctx context.Context,
	authorization string,
) (TokenState, *Principal, error) {
	if authorization == "" {
		return TokenAbsent, nil, nil
	}

	token, ok := BearerToken(authorization)
	if !ok {
		return TokenInvalid, nil, nil
	}

	claims, err := r.codec.Validate(token)
	if err != nil {
		r.logger.Debug("token rejected", slog.String("error", err.Error()))
		return TokenInvalid, nil, nil
	}

	p, err := r.store.GetByUsername(ctx, claims.Subject)
	if errors.Is(err, ErrPrincipalNotFound) {
		return TokenUnknownSubject, nil, nil
	}
	if err != nil {
		return TokenInvalid, nil, fmt.Errorf("resolving principal: %w", err)
	}

	return TokenValid, p, nil
}

// BearerToken extracts the token from a "Bearer <token>" header value.
// The scheme is matched case-insensitively.
func BearerToken(
	header string,
) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}
