// Package verification decides whether an organization domain claim becomes
// verified. Both entry points share one transition:
// conflict checks, then the DNS challenge, then the state update, then
// persistence, then exactly one audit event.
package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orgdomain/internal/config"
	"orgdomain/internal/eventlog"
	"orgdomain/pkg/dnsresolver"
	"orgdomain/pkg/domain"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/metrics"
	"orgdomain/pkg/serrors"
	"orgdomain/pkg/storage"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "orgdomain/internal/verification"

// Outcomes reported to metrics and traces.
const (
	outcomeVerified    = "verified"
	outcomeNotVerified = "not_verified"
	outcomeConflict    = "conflict"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

// Options tune the background verification path.
type Options struct {
	// Interval delays the next background attempt after a failed one.
	Interval time.Duration
	// MaxJobRunCount caps the persisted job run count.
	MaxJobRunCount int
	// MaxAttempts bounds river retries of a single verification job.
	MaxAttempts int
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Interval:       cfg.DomainVerification.Interval,
		MaxJobRunCount: cfg.DomainVerification.MaxJobRunCount,
		MaxAttempts:    cfg.DomainVerification.MaxAttempts,
	}
}

// EventLoggerFactory binds an event logger to a storage handle, so events can
// be written in the same transaction as the claim they describe.
type EventLoggerFactory func(s storage.EventStorage) eventlog.Logger

// Deps are the collaborators of the command.
type Deps struct {
	Storage     storage.Storage
	Resolver    dnsresolver.Resolver
	EventLogger EventLoggerFactory
	// Metrics is optional.
	Metrics *metrics.Verification
	// Now defaults to time.Now.
	Now func() time.Time
}

type command struct {
	options  Options
	storage  storage.Storage
	resolver dnsresolver.Resolver
	events   EventLoggerFactory
	metrics  *metrics.Verification
	now      func() time.Time
	tracer   trace.Tracer
}

// New creates a Command.
func New(deps Deps, options Options) Command {
	events := deps.EventLogger
	if events == nil {
		events = func(s storage.EventStorage) eventlog.Logger { return eventlog.New(s) }
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &command{
		options:  options,
		storage:  deps.Storage,
		resolver: deps.Resolver,
		events:   events,
		metrics:  deps.Metrics,
		now:      now,
		tracer:   otel.Tracer(tracerName),
	}
}

func (c *command) UserVerify(
	ctx context.Context,
	userID domain.UserID,
	id domain.OrganizationDomainID,
) (*domain.OrganizationDomain, error) {
	ctx, span := c.tracer.Start(ctx, "verification.UserVerify",
		trace.WithAttributes(attribute.String("organization_domain.id", id.String())))
	defer span.End()

	d, err := c.storage.OrganizationDomainByID(ctx, id)
	if err != nil {
		return nil, c.fail(ctx, span, "user", fmt.Errorf("could not load organization domain: %w", err))
	}
	if d == nil {
		return nil, c.fail(ctx, span, "user",
			serrors.With(serrors.ErrNotFound, "organization domain %s not found", id))
	}

	return c.verify(ctx, span, *d, domain.UserActor(userID))
}

func (c *command) SystemVerify(
	ctx context.Context,
	d domain.OrganizationDomain,
) (*domain.OrganizationDomain, error) {
	ctx, span := c.tracer.Start(ctx, "verification.SystemVerify",
		trace.WithAttributes(attribute.String("organization_domain.id", d.ID.String())))
	defer span.End()

	return c.verify(ctx, span, d, domain.SystemActor(domain.EventSystemUserDomainVerification))
}

// verify runs the shared transition on a copy of d. The caller's value is
// never modified.
func (c *command) verify(
	ctx context.Context,
	span trace.Span,
	d domain.OrganizationDomain,
	actor domain.Actor,
) (*domain.OrganizationDomain, error) {
	trigger := "user"
	if actor.IsSystem() {
		trigger = "system"
	}
	ctx = logger.WithFields(ctx,
		zap.Stringer("organizationDomainId", d.ID),
		zap.String("domainName", d.DomainName),
		zap.String("trigger", trigger))
	span.SetAttributes(attribute.String("organization_domain.name", d.DomainName), attribute.String("trigger", trigger))

	if d.IsVerified() {
		return nil, c.fail(ctx, span, trigger, serrors.With(serrors.ErrConflict, domain.MsgDomainAlreadyVerified))
	}

	name := domain.NormalizeDomainName(d.DomainName)

	claimed, err := c.storage.ClaimedOrganizationDomainsByName(ctx, name)
	if err != nil {
		return nil, c.fail(ctx, span, trigger, fmt.Errorf("could not load claimed domains: %w", err))
	}
	if len(claimed) > 0 {
		return nil, c.fail(ctx, span, trigger, c.systemAttempt(ctx, d, actor,
			serrors.With(serrors.ErrConflict, domain.MsgDomainNotAvailable)))
	}

	found, resolveErr := c.resolve(ctx, name, d.Txt)

	now := c.now()
	updated := d
	if actor.IsSystem() {
		updated.SetLastCheckedDate(now)
	}

	if resolveErr != nil {
		// An outage says nothing about ownership: no NotVerified event, and the
		// run count and next run date stay as they are so river retries of the
		// same job do not use up the claim's runs.
		if actor.IsSystem() {
			if err := c.storage.ReplaceOrganizationDomain(ctx, updated); err != nil {
				logger.Error(ctx, "could not record verification attempt", zap.Error(err))
			}
		}

		return nil, c.fail(ctx, span, trigger, fmt.Errorf("could not check TXT record: %w", resolveErr))
	}
	if actor.IsSystem() {
		updated.IncrementJobRunCount(c.options.MaxJobRunCount)
	}

	switch {
	case found:
		updated.SetVerifiedDate(now)
		updated.SetLastCheckedDate(now)
		if err := c.persist(ctx, updated, domain.EventTypeOrganizationDomainVerified, actor); err != nil {
			if errors.Is(err, serrors.ErrConflict) {
				// another organization won the race on the unique verified name
				err = c.systemAttempt(ctx, d, actor, err)
			}

			return nil, c.fail(ctx, span, trigger, err)
		}
		c.succeed(ctx, span, trigger, outcomeVerified)

		return &updated, nil
	case actor.IsSystem():
		updated.SetNextRunDate(now, c.options.Interval)
		if err := c.persist(ctx, updated, domain.EventTypeOrganizationDomainNotVerified, actor); err != nil {
			return nil, c.fail(ctx, span, trigger, err)
		}
		c.succeed(ctx, span, trigger, outcomeNotVerified)

		return &updated, nil
	default:
		if err := c.events(c.storage).LogOrganizationDomainEvent(ctx, d,
			domain.EventTypeOrganizationDomainNotVerified, actor); err != nil {
			return nil, c.fail(ctx, span, trigger, fmt.Errorf("could not log event: %w", err))
		}
		c.succeed(ctx, span, trigger, outcomeNotVerified)

		return &d, nil
	}
}

func (c *command) resolve(ctx context.Context, name, txt string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "verification.ResolveTXT")
	defer span.End()

	start := time.Now()
	found, err := c.resolver.Resolve(ctx, name, txt)

	result := "not_found"
	switch {
	case err != nil:
		result = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve failed")
	case found:
		result = "found"
	}
	span.SetAttributes(attribute.String("result", result))
	if c.metrics != nil {
		c.metrics.RecordDNSDuration(ctx, time.Since(start), result)
	}

	if err != nil && !errors.Is(err, serrors.ErrUnavailable) {
		err = serrors.Wrap(serrors.ErrUnavailable, err, "resolving TXT of %s", name)
	}

	return found, err
}

// persist replaces the claim and logs its event in one transaction.
func (c *command) persist(
	ctx context.Context,
	d domain.OrganizationDomain,
	eventType domain.EventType,
	actor domain.Actor,
) error {
	return c.storage.WithTx(ctx, func(tx storage.AllStorage) error { //nolint: wrapcheck
		if err := tx.ReplaceOrganizationDomain(ctx, d); err != nil {
			return fmt.Errorf("could not replace organization domain: %w", err)
		}
		if err := c.events(tx).LogOrganizationDomainEvent(ctx, d, eventType, actor); err != nil {
			return fmt.Errorf("could not log event: %w", err)
		}

		return nil
	})
}

// systemAttempt records a background attempt that ended in a conflict, so the
// claim still moves towards MaxJobRunCount. It returns cause.
func (c *command) systemAttempt(ctx context.Context, d domain.OrganizationDomain, actor domain.Actor, cause error) error {
	if !actor.IsSystem() {
		return cause
	}

	next := c.now().UTC().Add(c.options.Interval)
	if err := c.storage.IncrementOrganizationDomainJobRunCount(ctx, d.ID, c.options.MaxJobRunCount, next); err != nil {
		logger.Error(ctx, "could not record verification attempt", zap.Error(err))
	}

	return cause
}

func (c *command) succeed(ctx context.Context, span trace.Span, trigger, outcome string) {
	span.SetAttributes(attribute.String("outcome", outcome))
	if c.metrics != nil {
		c.metrics.RecordOutcome(ctx, trigger, outcome)
	}
	logger.Info(ctx, "organization domain checked", zap.String("outcome", outcome))
}

func (c *command) fail(ctx context.Context, span trace.Span, trigger string, err error) error {
	outcome := outcomeError
	switch serrors.KindOf(err) {
	case serrors.ErrConflict:
		outcome = outcomeConflict
	case serrors.ErrUnavailable:
		outcome = outcomeUnavailable
	}

	span.SetAttributes(attribute.String("outcome", outcome))
	span.RecordError(err)
	span.SetStatus(codes.Error, outcome)
	if c.metrics != nil {
		c.metrics.RecordOutcome(ctx, trigger, outcome)
	}
	logger.Info(ctx, "organization domain check failed", zap.String("outcome", outcome), zap.Error(err))

	return err
}
