package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"itemshare/internal/models"
	"itemshare/internal/storage"
)

// SaveComment accepts a comment only from a user whose approved booking of
// the item has already ended.
func (s *Storage) SaveComment(itemID, authorID int64, text string) (models.Comment, error) {
	var authorName string
	err := s.DB.QueryRow(`SELECT name FROM users WHERE id = $1`, authorID).Scan(&authorName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Comment{}, storage.ErrUserNotFound
		}
		return models.Comment{}, fmt.Errorf("failed to get author: %w", err)
	}

	if _, err = s.itemByID(itemID); err != nil {
		return models.Comment{}, err
	}

	var completed bool
	err = s.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE item_id = $1 AND booker_id = $2
			  AND status = 'APPROVED' AND end_date < NOW()
		)`, itemID, authorID).Scan(&completed)
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to check completed bookings: %w", err)
	}

	if !completed {
		return models.Comment{}, storage.ErrCommentNotAllowed
	}

	comment := models.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: authorName,
	}

	err = s.DB.QueryRow(`
		INSERT INTO comments (item_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING id, created`,
		itemID, authorID, text).Scan(&comment.ID, &comment.Created)
	if err != nil {
		return models.Comment{}, fmt.Errorf("failed to save comment: %w", err)
	}

	return comment, nil
}

func (s *Storage) CommentsByItem(itemID int64) ([]models.Comment, error) {
	query := `
		SELECT c.id, c.text, c.item_id, c.author_id, u.name, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.item_id = $1
		ORDER BY c.created`

	rows, err := s.DB.Query(query, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		err = rows.Scan(
			&c.ID,
			&c.Text,
			&c.ItemID,
			&c.AuthorID,
			&c.AuthorName,
			&c.Created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
