package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"itemshare/internal/models"
	"itemshare/internal/storage"
)

// CreateBooking runs the whole booking rule chain inside one transaction
// with the item row locked, so two concurrent requests for the same period
// cannot both pass the overlap check.
func (s *Storage) CreateBooking(itemID, bookerID int64, start, end time.Time) (models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var bookerExists bool
	err = tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, bookerID).Scan(&bookerExists)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to check booker: %w", err)
	}
	if !bookerExists {
		return models.Booking{}, storage.ErrUserNotFound
	}

	var ownerID int64
	var available bool
	err = tx.QueryRow(`SELECT owner_id, available FROM items WHERE id = $1 FOR UPDATE`, itemID).
		Scan(&ownerID, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrItemNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get item: %w", err)
	}

	if ownerID == bookerID {
		return models.Booking{}, storage.ErrOwnItemBooking
	}

	if !available {
		return models.Booking{}, storage.ErrItemUnavailable
	}

	rows, err := tx.Query(`
		SELECT start_date, end_date
		FROM bookings
		WHERE item_id = $1 AND status IN ('WAITING', 'APPROVED')`, itemID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to get existing bookings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var existing models.Booking
		if err = rows.Scan(&existing.Start, &existing.End); err != nil {
			return models.Booking{}, fmt.Errorf("failed to scan booking: %w", err)
		}
		if existing.Overlaps(start, end) {
			return models.Booking{}, storage.ErrTimeConflict
		}
	}

	if err = rows.Err(); err != nil {
		return models.Booking{}, fmt.Errorf("error iterating bookings: %w", err)
	}

	booking := models.Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   models.StatusWaiting,
	}

	err = tx.QueryRow(`
		INSERT INTO bookings (item_id, booker_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		itemID, bookerID, start, end, booking.Status).Scan(&booking.ID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, nil
}

// SetApproval moves a WAITING booking to APPROVED or REJECTED. The
// transition is one-shot: a decided booking never changes again.
func (s *Storage) SetApproval(bookingID, ownerID int64, approved bool) (models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var booking models.Booking
	var itemOwner int64
	err = tx.QueryRow(`
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status, i.owner_id
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1
		FOR UPDATE OF b`, bookingID).Scan(
		&booking.ID,
		&booking.ItemID,
		&booking.BookerID,
		&booking.Start,
		&booking.End,
		&booking.Status,
		&itemOwner,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if itemOwner != ownerID {
		return models.Booking{}, storage.ErrNotOwner
	}

	if booking.Status != models.StatusWaiting {
		return models.Booking{}, storage.ErrAlreadyDecided
	}

	booking.Status = models.StatusRejected
	if approved {
		booking.Status = models.StatusApproved
	}

	if _, err = tx.Exec(`UPDATE bookings SET status = $1 WHERE id = $2`, booking.Status, bookingID); err != nil {
		return models.Booking{}, fmt.Errorf("failed to update booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return models.Booking{}, fmt.Errorf("failed to commit booking update: %w", err)
	}

	return booking, nil
}

// BookingByID is visible to the booker and the item owner only.
func (s *Storage) BookingByID(bookingID, userID int64) (models.Booking, error) {
	var booking models.Booking
	var itemOwner int64
	err := s.DB.QueryRow(`
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status, i.owner_id
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE b.id = $1`, bookingID).Scan(
		&booking.ID,
		&booking.ItemID,
		&booking.BookerID,
		&booking.Start,
		&booking.End,
		&booking.Status,
		&itemOwner,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.BookerID != userID && itemOwner != userID {
		return models.Booking{}, storage.ErrNotOwner
	}

	return booking, nil
}

func (s *Storage) BookingsByBooker(bookerID int64, state models.BookingState, from, size int) ([]models.Booking, error) {
	if err := s.ensureUser(bookerID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status
		FROM bookings b
		WHERE b.booker_id = $1 %s
		ORDER BY b.start_date DESC
		LIMIT $2 OFFSET $3`, stateCondition(state))

	return s.queryBookings(query, bookerID, from, size)
}

func (s *Storage) BookingsByOwner(ownerID int64, state models.BookingState, from, size int) ([]models.Booking, error) {
	if err := s.ensureUser(ownerID); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT b.id, b.item_id, b.booker_id, b.start_date, b.end_date, b.status
		FROM bookings b
		JOIN items i ON i.id = b.item_id
		WHERE i.owner_id = $1 %s
		ORDER BY b.start_date DESC
		LIMIT $2 OFFSET $3`, stateCondition(state))

	return s.queryBookings(query, ownerID, from, size)
}

func (s *Storage) queryBookings(query string, subjectID int64, from, size int) ([]models.Booking, error) {
	// Page-index pagination: from values that are not multiples of size
	// round down to the page boundary, as the listing contract states.
	offset := (from / size) * size

	rows, err := s.DB.Query(query, subjectID, size, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err = rows.Scan(
			&b.ID,
			&b.ItemID,
			&b.BookerID,
			&b.Start,
			&b.End,
			&b.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func stateCondition(state models.BookingState) string {
	switch state {
	case models.StateCurrent:
		return `AND b.start_date <= NOW() AND b.end_date >= NOW()`
	case models.StatePast:
		return `AND b.end_date < NOW()`
	case models.StateFuture:
		return `AND b.start_date > NOW()`
	case models.StateWaiting:
		return `AND b.status = 'WAITING'`
	case models.StateRejected:
		return `AND b.status = 'REJECTED'`
	default:
		return ``
	}
}
