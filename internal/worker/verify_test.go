package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"orgdomain/internal/verification"
	mockverification "orgdomain/internal/verification/mock"
	"orgdomain/internal/worker"
	mockdnsresolver "orgdomain/pkg/dnsresolver/mock"
	"orgdomain/pkg/domain"
	"orgdomain/pkg/logger"
	"orgdomain/pkg/serrors"
	mockstorage "orgdomain/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func makeVerifyJob(id int64, domainID domain.OrganizationDomainID) *river.Job[verification.JobArgs] {
	return &river.Job[verification.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   verification.JobArgs{DomainID: domainID},
	}
}

func TestVerifyDomainWorker_Work(t *testing.T) {
	d := domain.OrganizationDomain{
		ID:         domain.OrganizationDomainID(uuid.New()),
		DomainName: "test.com",
		Txt:        "btw+12345",
	}

	tests := []struct {
		name       string
		verifyErr  error
		wantErr    bool
		wantCancel bool
	}{
		{name: "verified or not verified"},
		{name: "conflict cancels", verifyErr: serrors.With(serrors.ErrConflict, domain.MsgDomainNotAvailable), wantErr: true, wantCancel: true},
		{name: "dns outage retries", verifyErr: serrors.With(serrors.ErrUnavailable, "SERVFAIL"), wantErr: true},
		{name: "storage failure retries", verifyErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			st := mockstorage.NewMockStorage(ctrl)
			cmd := mockverification.NewMockCommand(ctrl)
			w := worker.NewVerifyDomainWorker(st, cmd)

			st.EXPECT().OrganizationDomainByID(gomock.Any(), d.ID).Return(&d, nil)
			if tt.verifyErr != nil {
				cmd.EXPECT().SystemVerify(gomock.Any(), d).Return(nil, tt.verifyErr)
			} else {
				cmd.EXPECT().SystemVerify(gomock.Any(), d).Return(&d, nil)
			}

			err := w.Work(context.Background(), makeVerifyJob(1, d.ID))
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)

			var cancelErr *river.JobCancelError
			require.Equal(t, tt.wantCancel, errors.As(err, &cancelErr))
		})
	}
}

func TestVerifyDomainWorker_Work_MissingDomainCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	cmd := mockverification.NewMockCommand(ctrl)
	w := worker.NewVerifyDomainWorker(st, cmd)

	id := domain.OrganizationDomainID(uuid.New())
	st.EXPECT().OrganizationDomainByID(gomock.Any(), id).Return(nil, nil)

	err := w.Work(context.Background(), makeVerifyJob(2, id))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestVerifyDomainWorker_Work_LoadErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	cmd := mockverification.NewMockCommand(ctrl)
	w := worker.NewVerifyDomainWorker(st, cmd)

	id := domain.OrganizationDomainID(uuid.New())
	st.EXPECT().OrganizationDomainByID(gomock.Any(), id).Return(nil, errors.New("db down"))

	err := w.Work(context.Background(), makeVerifyJob(3, id))
	require.ErrorContains(t, err, "db down")
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestVerifyDomainWorker_Work_OutageRetriesKeepClaimDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	resolver := mockdnsresolver.NewMockResolver(ctrl)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	opts := verification.Options{Interval: 12 * time.Hour, MaxJobRunCount: 3, MaxAttempts: 5}
	cmd := verification.New(verification.Deps{
		Storage:  st,
		Resolver: resolver,
		Now:      func() time.Time { return now },
	}, opts)
	w := worker.NewVerifyDomainWorker(st, cmd)

	claim := domain.OrganizationDomain{
		ID:          domain.OrganizationDomainID(uuid.New()),
		DomainName:  "test.com",
		Txt:         "btw+12345",
		NextRunDate: now.Add(-time.Hour),
		JobRunCount: 1,
	}

	st.EXPECT().OrganizationDomainByID(gomock.Any(), claim.ID).
		DoAndReturn(func(context.Context, domain.OrganizationDomainID) (*domain.OrganizationDomain, error) {
			c := claim

			return &c, nil
		}).Times(3)
	st.EXPECT().ClaimedOrganizationDomainsByName(gomock.Any(), "test.com").Return(nil, nil).Times(3)
	resolver.EXPECT().Resolve(gomock.Any(), "test.com", "btw+12345").
		Return(false, serrors.With(serrors.ErrUnavailable, "SERVFAIL")).Times(3)
	st.EXPECT().ReplaceOrganizationDomain(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d domain.OrganizationDomain) error {
			claim = d

			return nil
		}).Times(3)

	for attempt := 1; attempt <= 3; attempt++ {
		job := makeVerifyJob(int64(attempt), claim.ID)
		job.Attempt = attempt

		err := w.Work(context.Background(), job)
		require.ErrorIs(t, err, serrors.ErrUnavailable)
		var cancelErr *river.JobCancelError
		require.NotErrorAs(t, err, &cancelErr, "outages are retried")
	}

	// same predicate the sweep uses to pick claims up
	require.Equal(t, 1, claim.JobRunCount)
	require.Less(t, claim.JobRunCount, opts.MaxJobRunCount)
	require.False(t, claim.NextRunDate.After(now))
	require.False(t, claim.IsVerified())
}
