//go:build unit

package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"venuehub/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingReadStore struct {
	statusCalls []*string
	limitCalls  []int32
	items       []*BookingListItem
}

func (f *fakeBookingReadStore) FindByID(_ context.Context, _ uuid.UUID) (*BookingView, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingReadStore) FindByUserFirstPage(_ context.Context, _ uuid.UUID, _ int32) ([]*BookingListItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingReadStore) FindByUserKeyset(_ context.Context, _ uuid.UUID, _ time.Time, _ uuid.UUID, _ int32) ([]*BookingListItem, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingReadStore) FindByStatus(_ context.Context, status *string, limit int32) ([]*BookingListItem, error) {
	f.statusCalls = append(f.statusCalls, status)
	f.limitCalls = append(f.limitCalls, limit)
	return f.items, nil
}

func strPtr(s string) *string { return &s }

func TestBookingQueries_ListByStatus_Filter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    *string
		forwarded *string
	}{
		{name: "no filter passes through", status: nil, forwarded: nil},
		{name: "canonical status passes through", status: strPtr("approved"), forwarded: strPtr("approved")},
		{name: "synonym is normalized", status: strPtr("confirmed"), forwarded: strPtr("approved")},
		{name: "US spelling is normalized", status: strPtr("canceled"), forwarded: strPtr("cancelled")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeBookingReadStore{items: []*BookingListItem{{ID: uuid.New()}}}
			q := NewBookingQueries(store)

			items, err := q.ListByStatus(context.Background(), tt.status, 10)
			require.NoError(t, err)
			assert.Len(t, items, 1)

			require.Len(t, store.statusCalls, 1)
			if tt.forwarded == nil {
				assert.Nil(t, store.statusCalls[0])
			} else {
				require.NotNil(t, store.statusCalls[0])
				assert.Equal(t, *tt.forwarded, *store.statusCalls[0])
			}
		})
	}
}

func TestBookingQueries_ListByStatus_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	store := &fakeBookingReadStore{}
	q := NewBookingQueries(store)

	items, err := q.ListByStatus(context.Background(), strPtr("not-a-status"), 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
	assert.Nil(t, items)
	assert.Empty(t, store.statusCalls, "store must not be queried with an unvalidated filter")
}

func TestBookingQueries_ListByStatus_NormalizesLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
		want  int32
	}{
		{name: "zero falls back", limit: 0, want: 50},
		{name: "negative falls back", limit: -3, want: 50},
		{name: "over max falls back", limit: MaxListLimit + 1, want: 50},
		{name: "in range passes", limit: 25, want: 25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := &fakeBookingReadStore{}
			q := NewBookingQueries(store)

			_, err := q.ListByStatus(context.Background(), nil, tt.limit)
			require.NoError(t, err)
			require.Len(t, store.limitCalls, 1)
			assert.Equal(t, tt.want, store.limitCalls[0])
		})
	}
}
