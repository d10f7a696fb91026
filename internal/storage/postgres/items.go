package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func (s *Storage) SaveItem(item models.Item) (models.Item, error) {
	if err := s.ensureUser(item.OwnerID); err != nil {
		return models.Item{}, err
	}

	query := `
		INSERT INTO items (owner_id, name, description, available, request_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := s.DB.QueryRow(query, item.OwnerID, item.Name, item.Description, item.Available, item.RequestID).
		Scan(&item.ID)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to save item: %w", err)
	}

	return item, nil
}

// ItemByID returns the item with its comments. Last and next approved
// bookings are attached only when userID is the item's owner.
func (s *Storage) ItemByID(itemID, userID int64) (models.ItemDetails, error) {
	if err := s.ensureUser(userID); err != nil {
		return models.ItemDetails{}, err
	}

	item, err := s.itemByID(itemID)
	if err != nil {
		return models.ItemDetails{}, err
	}

	return s.itemDetails(item, item.OwnerID == userID)
}

func (s *Storage) ItemsByOwner(ownerID int64) ([]models.ItemDetails, error) {
	if err := s.ensureUser(ownerID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id`

	rows, err := s.DB.Query(query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		err = rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Name,
			&item.Description,
			&item.Available,
			&item.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	details := make([]models.ItemDetails, 0, len(items))
	for _, item := range items {
		d, err := s.itemDetails(item, true)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

func (s *Storage) UpdateItem(itemID, ownerID int64, patch models.ItemPatch) (models.Item, error) {
	if err := s.ensureUser(ownerID); err != nil {
		return models.Item{}, err
	}

	existing, err := s.itemByID(itemID)
	if err != nil {
		return models.Item{}, err
	}

	if existing.OwnerID != ownerID {
		return models.Item{}, storage.ErrNotOwner
	}

	set := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		set = append(set, fmt.Sprintf("description = $%d", len(args)))
	}
	if patch.Available != nil {
		args = append(args, *patch.Available)
		set = append(set, fmt.Sprintf("available = $%d", len(args)))
	}

	if len(set) == 0 {
		return existing, nil
	}

	args = append(args, itemID)
	query := fmt.Sprintf(`
		UPDATE items SET %s
		WHERE id = $%d
		RETURNING id, owner_id, name, description, available, request_id`,
		strings.Join(set, ", "), len(args))

	var item models.Item
	err = s.DB.QueryRow(query, args...).Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Description,
		&item.Available,
		&item.RequestID,
	)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// SearchItems matches text against name and description, case-insensitively,
// over available items only.
func (s *Storage) SearchItems(text string) ([]models.Item, error) {
	query := `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE available = TRUE
		  AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY id`

	rows, err := s.DB.Query(query, text)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		err = rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Name,
			&item.Description,
			&item.Available,
			&item.RequestID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

func (s *Storage) DeleteItem(itemID, ownerID int64) error {
	item, err := s.itemByID(itemID)
	if err != nil {
		return err
	}

	if item.OwnerID != ownerID {
		return storage.ErrNotOwner
	}

	if _, err = s.DB.Exec(`DELETE FROM items WHERE id = $1`, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	return nil
}

func (s *Storage) itemByID(itemID int64) (models.Item, error) {
	query := `
		SELECT id, owner_id, name, description, available, request_id
		FROM items
		WHERE id = $1`

	var item models.Item
	err := s.DB.QueryRow(query, itemID).Scan(
		&item.ID,
		&item.OwnerID,
		&item.Name,
		&item.Description,
		&item.Available,
		&item.RequestID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, storage.ErrItemNotFound
		}
		return models.Item{}, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

func (s *Storage) itemDetails(item models.Item, forOwner bool) (models.ItemDetails, error) {
	details := models.ItemDetails{Item: item}

	comments, err := s.CommentsByItem(item.ID)
	if err != nil {
		return models.ItemDetails{}, err
	}
	details.Comments = comments

	if !forOwner {
		return details, nil
	}

	last, err := s.nearestBooking(item.ID, `start_date <= NOW()`, `DESC`)
	if err != nil {
		return models.ItemDetails{}, err
	}
	details.LastBooking = last

	next, err := s.nearestBooking(item.ID, `start_date > NOW()`, `ASC`)
	if err != nil {
		return models.ItemDetails{}, err
	}
	details.NextBooking = next

	return details, nil
}

// nearestBooking returns the approved booking closest to now on the given
// side, or nil when there is none.
func (s *Storage) nearestBooking(itemID int64, cond, order string) (*models.Booking, error) {
	query := fmt.Sprintf(`
		SELECT id, item_id, booker_id, start_date, end_date, status
		FROM bookings
		WHERE item_id = $1 AND status = 'APPROVED' AND %s
		ORDER BY start_date %s
		LIMIT 1`, cond, order)

	var b models.Booking
	err := s.DB.QueryRow(query, itemID).Scan(
		&b.ID,
		&b.ItemID,
		&b.BookerID,
		&b.Start,
		&b.End,
		&b.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get nearest booking: %w", err)
	}

	return &b, nil
}
