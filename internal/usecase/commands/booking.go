package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"venuehub/internal/domain/booking"
	"venuehub/internal/domain/refund"
	"venuehub/internal/domain/space"
	"venuehub/internal/domain/user"
	reqdto "venuehub/internal/handler/dto/request"
	"venuehub/internal/infra"
	"venuehub/internal/pkg/clock"
	"venuehub/internal/pkg/errs"
	"venuehub/internal/usecase/queries"
	"venuehub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSpaceNotFound           = errs.New("space not found")
	ErrCatalogItemNotFound     = errs.New("catalog item not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrNotBookingOwner         = errs.New("booking belongs to another user")
	ErrInvalidTimeSlot         = errs.New("invalid time slot")
	ErrBookingConflict         = errs.New("booking conflict")
	ErrNoEditChanges           = errs.New("edit request contains no changes")
	ErrDuplicateRequest        = errs.New("idempotency key reused with a different request")
	ErrIdempotencyInProgress   = errs.New("request with this idempotency key is in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// ConflictError carries the human-readable reference of the booking that
// already holds the requested slot; the API surfaces it in the 409 body.
type ConflictError struct {
	Reference string
}

func (e *ConflictError) Error() string {
	return "requested slot conflicts with booking " + e.Reference
}

const idempotencyKeyTTL = 24 * time.Hour

type CreateBookingResult struct {
	Booking    *queries.BookingView
	IsReplayed bool
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID, role user.Role, idempotencyKey uuid.UUID) (*CreateBookingResult, error)
	CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role user.Role, reason string) error
	EditBooking(ctx context.Context, bookingID, requesterID uuid.UUID, req reqdto.EditBookingRequest) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	settings       shared.SettingsProvider
	factory        *booking.Factory
	calc           booking.QuoteCalculator
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	settings shared.SettingsProvider,
	factory *booking.Factory,
	calc booking.QuoteCalculator,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		settings:       settings,
		factory:        factory,
		calc:           calc,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (u *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
	role user.Role,
	idempotencyKey uuid.UUID,
) (*CreateBookingResult, error) {
	domainData, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	requestHash := calculateRequestHash(req)
	expiresAt := u.clock.Now().Add(idempotencyKeyTTL)

	adminOriginated := role.AtLeast(user.RoleAdmin)
	autoApprove := false
	if adminOriginated {
		autoApprove, err = u.settings.AutoApprove(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	var (
		resultID   uuid.UUID
		isReplayed bool
	)
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayID, err := u.handleIdempotency(ctx, tx, idempotencyKey, userID, requestHash, expiresAt)
		if err != nil {
			return err
		}
		if replayID != nil {
			resultID = *replayID
			isReplayed = true
			return nil
		}

		// The row lock serializes conflict checks for this space; the
		// exclusion constraint backstops writers that bypass it.
		snap, err := tx.Reads().SpaceForUpdate(ctx, req.SpaceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrSpaceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		sp, err := space.NewSpace(snap.ID, snap.VenueID, snap.Name, snap.HourlyRateCents, snap.IsActive)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		specs, err := u.resolveItemSpecs(ctx, tx, req.Items)
		if err != nil {
			return err
		}

		b, err := u.factory.CreateBooking(sp, userID, domainData.Slot, domainData.EventType, specs, domainData.Note, adminOriginated, autoApprove)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		windows, err := tx.Reads().ActiveWindows(ctx, sp.ID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if w := booking.FindConflict(b.Slot(), b.EventType(), windows, uuid.Nil); w != nil {
			return &ConflictError{Reference: w.Reference}
		}

		bookingID, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := createBookingNotification(ctx, tx, "booking_created", bookingID, u.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, userID, calculateIDHash(bookingID), bookingID); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		resultID = bookingID
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, resultID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &CreateBookingResult{Booking: view, IsReplayed: isReplayed}, nil
}

// handleIdempotency claims the key or resolves a replay. A nil, nil return
// means the key is fresh and the caller owns the request.
func (u *bookingCommandsImpl) handleIdempotency(
	ctx context.Context,
	tx shared.Tx,
	key, userID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*uuid.UUID, error) {
	err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, userID, "POST /bookings", requestHash, expiresAt)
	if err == nil {
		return nil, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	existing, err := tx.Reads().IdempotencyByKey(ctx, key, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		if existing.ResultBookingID == nil {
			return nil, errs.Mark(errs.New("completed idempotency record has no result"), ErrIdempotencyCheckFailed)
		}
		return existing.ResultBookingID, nil

	case "processing":
		if existing.ExpiresAt.Before(u.clock.Now()) {
			claimed, claimErr := tx.Idempotency().ClaimExpiredKey(ctx, tx.DB(), key, userID, requestHash, expiresAt)
			if claimErr != nil {
				return nil, errs.Mark(claimErr, ErrIdempotencyCheckFailed)
			}
			if claimed > 0 {
				return nil, nil
			}
		}
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateRequest
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.Mark(errs.New("invalid idempotency key status"), ErrIdempotencyCheckFailed)
	}
}

func (u *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, requesterID uuid.UUID, role user.Role, reason string) error {
	var (
		paid      booking.Money
		cancelled bool
	)
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !b.IsOwner(requesterID) && !role.AtLeast(user.RoleAdmin) {
			return ErrNotBookingOwner
		}

		if err := b.Cancel(u.clock.Now()); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if err := tx.Bookings().CancelItems(ctx, tx.DB(), b.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := createBookingNotification(ctx, tx, "booking_cancelled", b.ID(), u.clock.Now()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		paid = b.Total()
		cancelled = true
		return nil
	})
	if err != nil {
		return err
	}

	// The refund record is bookkeeping after the fact: its failure must not
	// undo the cancellation, so it runs outside the cancel transaction.
	if cancelled && !paid.IsZero() {
		if refundErr := u.createRefund(ctx, bookingID, paid, reason); refundErr != nil {
			slog.Error("failed to create refund for cancelled booking",
				"booking_id", bookingID,
				"error", refundErr.Error())
		}
	}
	return nil
}

func (u *bookingCommandsImpl) createRefund(ctx context.Context, bookingID uuid.UUID, paid booking.Money, reason string) error {
	percent, err := u.settings.RefundPercent(ctx)
	if err != nil {
		return err
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		open, err := tx.Reads().HasOpenRefund(ctx, bookingID)
		if err != nil {
			return err
		}
		if open {
			// Retried cancellation; the earlier refund stands.
			return nil
		}

		r, err := refund.NewRefund(bookingID, paid, percent, reason)
		if err != nil {
			return err
		}

		if _, err := tx.Refunds().Create(ctx, tx.DB(), r); err != nil {
			// The partial unique index closes the race between two
			// concurrent cancellations.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil
			}
			return err
		}
		return nil
	})
}

func (u *bookingCommandsImpl) EditBooking(ctx context.Context, bookingID, requesterID uuid.UUID, req reqdto.EditBookingRequest) (*queries.BookingView, error) {
	if !req.HasChanges() {
		return nil, ErrNoEditChanges
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !b.IsOwner(requesterID) {
			return ErrNotBookingOwner
		}

		snap, err := tx.Reads().SpaceForUpdate(ctx, b.SpaceID())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		sp, err := space.NewSpace(snap.ID, snap.VenueID, snap.Name, snap.HourlyRateCents, snap.IsActive)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		newSlot := b.Slot()
		if req.StartsAt != nil || req.EndsAt != nil {
			start := b.Slot().Start()
			end := b.Slot().End()
			if req.StartsAt != nil {
				start = *req.StartsAt
			}
			if req.EndsAt != nil {
				end = *req.EndsAt
			}
			newSlot, err = booking.NewTimeSlot(start, end)
			if err != nil {
				return errs.Mark(err, ErrInvalidTimeSlot)
			}
		}

		itemReqs := itemRequestsFromBooking(b)
		if req.Items != nil {
			itemReqs = *req.Items
		}
		specs, err := u.resolveItemSpecs(ctx, tx, itemReqs)
		if err != nil {
			return err
		}

		if !newSlot.Equal(b.Slot()) {
			windows, err := tx.Reads().ActiveWindows(ctx, b.SpaceID())
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			// A short end extension only adds the tail interval; everything
			// else re-checks the whole range.
			checkSlot := newSlot
			if tail, ok := booking.ExtensionTail(b.Slot(), newSlot); ok {
				checkSlot = tail
			}
			if w := booking.FindConflict(checkSlot, b.EventType(), windows, b.ID()); w != nil {
				return &ConflictError{Reference: w.Reference}
			}
		}

		addons := make([]booking.AddOn, len(specs))
		newItems := make([]*booking.LineItem, len(specs))
		hours := newSlot.Duration().Hours()
		for i, spec := range specs {
			addons[i] = spec.AddOn()
			newItems[i] = booking.NewLineItem(spec.CatalogItemID, spec.Quantity,
				booking.NewMoney(spec.UnitPriceCents),
				booking.NewMoney(booking.AddOnTotalCents(spec.AddOn(), hours)))
		}
		quote := u.calc.Quote(sp, newSlot, addons, b.EventType())

		if err := b.ApplyEdit(newSlot, booking.NewMoney(quote.TotalCents)); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if req.Items != nil {
			if err := tx.Bookings().ReplaceItems(ctx, tx.DB(), b.ID(), newItems); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		return createBookingNotification(ctx, tx, "booking_edited", b.ID(), u.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	view, err := u.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// resolveItemSpecs prices the requested items from the catalog; client input
// carries ids and quantities only.
func (u *bookingCommandsImpl) resolveItemSpecs(ctx context.Context, tx shared.Tx, items []reqdto.BookingItemRequest) ([]booking.ItemSpec, error) {
	if len(items) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.CatalogItemID
	}
	catalog, err := tx.Reads().CatalogItemsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	byID := make(map[uuid.UUID]shared.CatalogItemSnapshot, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	specs := make([]booking.ItemSpec, len(items))
	for i, it := range items {
		c, ok := byID[it.CatalogItemID]
		if !ok {
			return nil, ErrCatalogItemNotFound
		}
		specs[i] = booking.ItemSpec{
			CatalogItemID:      c.ID,
			Quantity:           it.Quantity,
			UnitPriceCents:     c.UnitPriceCents,
			IncludedHours:      c.IncludedHours,
			ExtraHourRateCents: c.ExtraHourRateCents,
		}
	}
	return specs, nil
}

func itemRequestsFromBooking(b *booking.Booking) []reqdto.BookingItemRequest {
	items := make([]reqdto.BookingItemRequest, len(b.Items()))
	for i, it := range b.Items() {
		items[i] = reqdto.BookingItemRequest{
			CatalogItemID: it.CatalogItemID(),
			Quantity:      it.Quantity(),
		}
	}
	return items
}

func createBookingNotification(ctx context.Context, tx shared.Tx, topic string, bookingID uuid.UUID, runAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"booking_id": bookingID,
		"type":       topic,
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "email", topic, payload, runAt)
}

func calculateRequestHash(req any) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
