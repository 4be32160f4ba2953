package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orgdomain/pkg/domain"
	"orgdomain/pkg/serrors"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	organizationDomainsTable = "organization_domains"
)

func (p *PgSQL) OrganizationDomainByID(
	ctx context.Context,
	id domain.OrganizationDomainID,
) (*domain.OrganizationDomain, error) {
	var row PgOrganizationDomain
	found, err := p.Builder.From(organizationDomainsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch organization domain by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) ClaimedOrganizationDomainsByName(
	ctx context.Context,
	domainName string,
) ([]domain.OrganizationDomain, error) {
	var rows []PgOrganizationDomain
	if err := p.Builder.From(organizationDomainsTable).
		Where(
			goqu.I("normalized_name").Eq(domain.NormalizeDomainName(domainName)),
			goqu.I("verified_date").IsNotNull(),
		).
		Order(goqu.I("verified_date").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch claimed organization domains: %w", err)
	}

	return pgOrganizationDomainsToDomain(rows), nil
}

func (p *PgSQL) StoreOrganizationDomain(
	ctx context.Context,
	d domain.OrganizationDomain,
) (*domain.OrganizationDomain, error) {
	if d.NextRunDate.IsZero() {
		d.NextRunDate = time.Now().UTC()
	}

	var row PgOrganizationDomain
	row.FromDomain(d)

	var stored PgOrganizationDomain
	if _, err := p.Builder.Insert(organizationDomainsTable).
		Rows(row).
		Returning(&PgOrganizationDomain{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, mapWriteError(err, "could not store organization domain into pg")
	}

	return stored.ToDomain(), nil
}

// ReplaceOrganizationDomain overwrites the mutable columns of a claim. The
// identity columns and creation date are left untouched.
func (p *PgSQL) ReplaceOrganizationDomain(ctx context.Context, d domain.OrganizationDomain) error {
	var row PgOrganizationDomain
	row.FromDomain(d)

	res, err := p.Builder.Update(organizationDomainsTable).
		Set(goqu.Record{
			"domain_name":       row.DomainName,
			"normalized_name":   row.NormalizedName,
			"txt":               row.Txt,
			"verified_date":     row.VerifiedDate,
			"last_checked_date": row.LastCheckedDate,
			"next_run_date":     row.NextRunDate,
			"job_run_count":     row.JobRunCount,
		}).
		Where(goqu.I("id").Eq(row.ID)).
		Executor().ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "could not replace organization domain in pg")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return serrors.With(serrors.ErrNotFound, "organization domain %s not found", d.ID)
	}

	return nil
}

// IncrementOrganizationDomainJobRunCount bumps the run counter without
// touching verification state. The counter saturates at maxJobRunCount.
func (p *PgSQL) IncrementOrganizationDomainJobRunCount(
	ctx context.Context,
	id domain.OrganizationDomainID,
	maxJobRunCount int,
	nextRunDate time.Time,
) error {
	count := goqu.L("job_run_count + 1")
	if maxJobRunCount > 0 {
		count = goqu.L("LEAST(job_run_count + 1, ?)", maxJobRunCount)
	}

	res, err := p.Builder.Update(organizationDomainsTable).
		Set(goqu.Record{
			"job_run_count":     count,
			"next_run_date":     nextRunDate.UTC(),
			"last_checked_date": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not increment organization domain job run count: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return serrors.With(serrors.ErrNotFound, "organization domain %s not found", id)
	}

	return nil
}

func (p *PgSQL) DuePendingOrganizationDomains(
	ctx context.Context,
	now time.Time,
	maxJobRunCount int,
	after *domain.OrganizationDomain,
	limit uint,
) ([]domain.OrganizationDomain, error) {
	w := []goqu.Expression{
		goqu.I("verified_date").IsNull(),
		goqu.I("next_run_date").Lte(now.UTC()),
	}
	if maxJobRunCount > 0 {
		w = append(w, goqu.I("job_run_count").Lt(maxJobRunCount))
	}
	if after != nil {
		w = append(w, goqu.L("(next_run_date, id) > (?, ?)", after.NextRunDate.UTC(), uuid.UUID(after.ID)))
	}

	ds := p.Builder.From(organizationDomainsTable).
		Where(w...).
		Order(goqu.I("next_run_date").Asc(), goqu.I("id").Asc())
	if limit > 0 {
		ds = ds.Limit(limit)
	}

	var rows []PgOrganizationDomain
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch due pending organization domains: %w", err)
	}

	return pgOrganizationDomainsToDomain(rows), nil
}

func mapWriteError(err error, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return serrors.Wrap(serrors.ErrConflict, err, domain.MsgDomainNotAvailable)
	}

	return fmt.Errorf("%s: %w", msg, err)
}
