package commands

import (
	"context"

	"venuehub/internal/domain/booking"
	"venuehub/internal/infra"
	"venuehub/internal/pkg/clock"
	"venuehub/internal/pkg/errs"
	"venuehub/internal/usecase/shared"

	"github.com/google/uuid"
)

type VendorCommands interface {
	ConfirmItem(ctx context.Context, itemID, vendorID uuid.UUID) error
	RejectItem(ctx context.Context, itemID, vendorID uuid.UUID, note string) error
}

type vendorCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVendorCommands(uow shared.UnitOfWork, clk clock.Clock) VendorCommands {
	return &vendorCommandsImpl{uow: uow, clock: clk}
}

func (u *vendorCommandsImpl) ConfirmItem(ctx context.Context, itemID, vendorID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := u.loadItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if err := item.Confirm(vendorID); err != nil {
			return err
		}
		if err := tx.Bookings().SaveItem(ctx, tx.DB(), item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// RejectItem records the sticky rejection and returns the item to the pool.
func (u *vendorCommandsImpl) RejectItem(ctx context.Context, itemID, vendorID uuid.UUID, note string) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := u.loadItem(ctx, tx, itemID)
		if err != nil {
			return err
		}
		if err := item.Reject(vendorID, note, u.clock.Now()); err != nil {
			return err
		}
		if err := tx.Bookings().SaveItem(ctx, tx.DB(), item); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		rejections := item.Rejections()
		if err := tx.Bookings().AddItemRejection(ctx, tx.DB(), item.ID(), rejections[len(rejections)-1]); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *vendorCommandsImpl) loadItem(ctx context.Context, tx shared.Tx, itemID uuid.UUID) (*booking.LineItem, error) {
	bookingID, err := tx.Reads().BookingIDByItem(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLineItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	li, err := b.ItemByID(itemID)
	if err != nil {
		return nil, ErrLineItemNotFound
	}
	return li, nil
}
