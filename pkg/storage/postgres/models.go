package postgres

import (
	"database/sql"
	"time"

	"orgdomain/pkg/domain"

	"github.com/google/uuid"
)

type PgOrganizationDomain struct {
	ID             uuid.UUID `db:"id"              goqu:"skipinsert"`
	OrganizationID uuid.UUID `db:"organization_id"`

	DomainName     string `db:"domain_name"`
	NormalizedName string `db:"normalized_name"`
	Txt            string `db:"txt"`

	CreationDate    time.Time    `db:"creation_date"     goqu:"skipinsert"`
	VerifiedDate    sql.NullTime `db:"verified_date"`
	LastCheckedDate sql.NullTime `db:"last_checked_date"`
	NextRunDate     time.Time    `db:"next_run_date"`
	JobRunCount     int          `db:"job_run_count"`
}

func (p *PgOrganizationDomain) ToDomain() *domain.OrganizationDomain {
	d := &domain.OrganizationDomain{
		ID:             domain.OrganizationDomainID(p.ID),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		DomainName:     p.DomainName,
		Txt:            p.Txt,
		CreationDate:   p.CreationDate.UTC(),
		NextRunDate:    p.NextRunDate.UTC(),
		JobRunCount:    p.JobRunCount,
	}
	if p.VerifiedDate.Valid {
		t := p.VerifiedDate.Time.UTC()
		d.VerifiedDate = &t
	}
	if p.LastCheckedDate.Valid {
		t := p.LastCheckedDate.Time.UTC()
		d.LastCheckedDate = &t
	}

	return d
}

func (p *PgOrganizationDomain) FromDomain(d domain.OrganizationDomain) {
	*p = PgOrganizationDomain{
		ID:              uuid.UUID(d.ID),
		OrganizationID:  uuid.UUID(d.OrganizationID),
		DomainName:      d.DomainName,
		NormalizedName:  domain.NormalizeDomainName(d.DomainName),
		Txt:             d.Txt,
		CreationDate:    d.CreationDate,
		VerifiedDate:    nullTime(d.VerifiedDate),
		LastCheckedDate: nullTime(d.LastCheckedDate),
		NextRunDate:     d.NextRunDate,
		JobRunCount:     d.JobRunCount,
	}
}

func pgOrganizationDomainsToDomain(rows []PgOrganizationDomain) []domain.OrganizationDomain {
	out := make([]domain.OrganizationDomain, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgEvent struct {
	ID             uuid.UUID      `db:"id"`
	Type           int            `db:"type"`
	OrganizationID uuid.UUID      `db:"organization_id"`
	DomainName     sql.NullString `db:"domain_name"`
	ActingUserID   uuid.NullUUID  `db:"acting_user_id"`
	SystemUser     sql.NullInt16  `db:"system_user"`
	Date           time.Time      `db:"date"`
}

func (p *PgEvent) ToDomain() domain.Event {
	e := domain.Event{
		ID:             domain.EventID(p.ID),
		Type:           domain.EventType(p.Type),
		OrganizationID: domain.OrganizationID(p.OrganizationID),
		DomainName:     p.DomainName.String,
		SystemUser:     domain.EventSystemUser(p.SystemUser.Int16),
		Date:           p.Date.UTC(),
	}
	if p.ActingUserID.Valid {
		id := domain.UserID(p.ActingUserID.UUID)
		e.ActingUserID = &id
	}

	return e
}

func (p *PgEvent) FromDomain(e domain.Event) {
	*p = PgEvent{
		ID:             uuid.UUID(e.ID),
		Type:           int(e.Type),
		OrganizationID: uuid.UUID(e.OrganizationID),
		DomainName:     sql.NullString{String: e.DomainName, Valid: e.DomainName != ""},
		SystemUser: sql.NullInt16{
			Int16: int16(e.SystemUser), //nolint: gosec
			Valid: e.ActingUserID == nil,
		},
		Date: e.Date,
	}
	if e.ActingUserID != nil {
		p.ActingUserID = uuid.NullUUID{UUID: uuid.UUID(*e.ActingUserID), Valid: true}
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}
