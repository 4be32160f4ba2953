package postgres_test

import (
	"context"
	"testing"
	"time"

	"orgdomain/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreEvents(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	orgID := domain.OrganizationID(uuid.New())
	userID := domain.UserID(uuid.New())

	require.NoError(t, pg.StoreEvents(ctx))

	err := pg.StoreEvents(ctx,
		domain.Event{
			Type:           domain.EventTypeOrganizationDomainVerified,
			OrganizationID: orgID,
			DomainName:     "example.com",
			ActingUserID:   &userID,
		},
		domain.Event{
			Type:           domain.EventTypeOrganizationDomainNotVerified,
			OrganizationID: orgID,
			DomainName:     "example.com",
			SystemUser:     domain.EventSystemUserDomainVerification,
			Date:           time.Now().Add(time.Minute),
		},
	)
	require.NoError(t, err)

	rows, err := pg.Pool.Query(ctx,
		`SELECT type, acting_user_id, system_user FROM events WHERE organization_id = $1 ORDER BY date`,
		uuid.UUID(orgID))
	require.NoError(t, err)
	defer rows.Close()

	type row struct {
		eventType  int
		actingUser *uuid.UUID
		systemUser *int16
	}
	var got []row
	for rows.Next() {
		var r row
		require.NoError(t, rows.Scan(&r.eventType, &r.actingUser, &r.systemUser))
		got = append(got, r)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)

	require.Equal(t, int(domain.EventTypeOrganizationDomainVerified), got[0].eventType)
	require.NotNil(t, got[0].actingUser)
	require.Equal(t, uuid.UUID(userID), *got[0].actingUser)
	require.Nil(t, got[0].systemUser)

	require.Equal(t, int(domain.EventTypeOrganizationDomainNotVerified), got[1].eventType)
	require.Nil(t, got[1].actingUser)
	require.NotNil(t, got[1].systemUser)
	require.Equal(t, int16(domain.EventSystemUserDomainVerification), *got[1].systemUser)
}
