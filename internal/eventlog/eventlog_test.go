package eventlog_test

import (
	"context"
	"errors"
	"testing"

	"orgdomain/internal/eventlog"
	"orgdomain/pkg/domain"
	mockstorage "orgdomain/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogOrganizationDomainEvent(t *testing.T) {
	d := domain.OrganizationDomain{
		ID:             domain.OrganizationDomainID(uuid.New()),
		OrganizationID: domain.OrganizationID(uuid.New()),
		DomainName:     "Test Domain",
		Txt:            "btw+test18383838383",
	}
	userID := domain.UserID(uuid.New())

	tests := []struct {
		name      string
		eventType domain.EventType
		actor     domain.Actor
		check     func(t *testing.T, e domain.Event)
	}{
		{
			name:      "user actor",
			eventType: domain.EventTypeOrganizationDomainVerified,
			actor:     domain.UserActor(userID),
			check: func(t *testing.T, e domain.Event) {
				t.Helper()
				require.NotNil(t, e.ActingUserID)
				require.Equal(t, userID, *e.ActingUserID)
				require.Equal(t, domain.EventSystemUserUnknown, e.SystemUser)
			},
		},
		{
			name:      "system actor",
			eventType: domain.EventTypeOrganizationDomainNotVerified,
			actor:     domain.SystemActor(domain.EventSystemUserDomainVerification),
			check: func(t *testing.T, e domain.Event) {
				t.Helper()
				require.Nil(t, e.ActingUserID)
				require.Equal(t, domain.EventSystemUserDomainVerification, e.SystemUser)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s := mockstorage.NewMockAllStorage(ctrl)

			s.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, events ...domain.Event) error {
					require.Len(t, events, 1)
					e := events[0]
					require.Equal(t, tt.eventType, e.Type)
					require.Equal(t, d.OrganizationID, e.OrganizationID)
					require.Equal(t, d.DomainName, e.DomainName)
					require.False(t, e.Date.IsZero())
					tt.check(t, e)

					return nil
				})

			err := eventlog.New(s).LogOrganizationDomainEvent(context.Background(), d, tt.eventType, tt.actor)
			require.NoError(t, err)
		})
	}
}

func TestLogOrganizationDomainEvent_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mockstorage.NewMockAllStorage(ctrl)
	s.EXPECT().StoreEvents(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	err := eventlog.New(s).LogOrganizationDomainEvent(context.Background(),
		domain.OrganizationDomain{},
		domain.EventTypeOrganizationDomainVerified,
		domain.SystemActor(domain.EventSystemUserDomainVerification))
	require.ErrorContains(t, err, "db down")
}
