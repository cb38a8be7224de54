package commands

import (
	"context"
	"errors"
	"log/slog"

	"venuehub/internal/domain/booking"
	"venuehub/internal/infra"
	"venuehub/internal/pkg/clock"
	"venuehub/internal/pkg/errs"
	"venuehub/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrLineItemNotFound = errs.New("line item not found")

type AdminBookingCommands interface {
	ApproveBooking(ctx context.Context, bookingID uuid.UUID) error
	RejectBooking(ctx context.Context, bookingID uuid.UUID, reason string) error
	AssignVendor(ctx context.Context, bookingID, itemID, vendorID uuid.UUID) error
}

type adminBookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAdminBookingCommands(uow shared.UnitOfWork, clk clock.Clock) AdminBookingCommands {
	return &adminBookingCommandsImpl{uow: uow, clock: clk}
}

func (u *adminBookingCommandsImpl) ApproveBooking(ctx context.Context, bookingID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := b.Approve(); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.autoAssignDefaultVendors(ctx, tx, b); err != nil {
			return err
		}

		return createBookingNotification(ctx, tx, "booking_approved", b.ID(), u.clock.Now())
	})
}

// autoAssignDefaultVendors puts unassigned items under their catalog default
// vendor on approval. Items whose default vendor already rejected them stay
// unassigned for manual dispatch.
func (u *adminBookingCommandsImpl) autoAssignDefaultVendors(ctx context.Context, tx shared.Tx, b *booking.Booking) error {
	var catalogIDs []uuid.UUID
	for _, item := range b.Items() {
		if item.Status() == booking.ItemStatusUnassigned {
			catalogIDs = append(catalogIDs, item.CatalogItemID())
		}
	}
	if len(catalogIDs) == 0 {
		return nil
	}

	catalog, err := tx.Reads().CatalogItemsByIDs(ctx, catalogIDs)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defaultVendors := make(map[uuid.UUID]uuid.UUID, len(catalog))
	for _, c := range catalog {
		if c.DefaultVendorID != nil {
			defaultVendors[c.ID] = *c.DefaultVendorID
		}
	}

	for _, item := range b.Items() {
		if item.Status() != booking.ItemStatusUnassigned {
			continue
		}
		vendorID, ok := defaultVendors[item.CatalogItemID()]
		if !ok {
			continue
		}
		if err := item.Assign(vendorID); err != nil {
			if errors.Is(err, booking.ErrVendorPreviouslyRejected) {
				slog.Info("skipping default vendor with prior rejection",
					"item_id", item.ID(), "vendor_id", vendorID)
				continue
			}
			return err
		}
		if err := tx.Bookings().SaveItem(ctx, tx.DB(), item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (u *adminBookingCommandsImpl) RejectBooking(ctx context.Context, bookingID uuid.UUID, reason string) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if err := b.Reject(); err != nil {
			return err
		}
		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return createBookingNotification(ctx, tx, "booking_rejected", b.ID(), u.clock.Now())
	})
}

func (u *adminBookingCommandsImpl) AssignVendor(ctx context.Context, bookingID, itemID, vendorID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := u.loadBooking(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		item, err := b.ItemByID(itemID)
		if err != nil {
			return ErrLineItemNotFound
		}
		if err := item.Assign(vendorID); err != nil {
			return err
		}
		if err := tx.Bookings().SaveItem(ctx, tx.DB(), item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *adminBookingCommandsImpl) loadBooking(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return b, nil
}
