package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func (s *Storage) SaveRequest(requesterID int64, description string) (models.ItemRequest, error) {
	if err := s.ensureUser(requesterID); err != nil {
		return models.ItemRequest{}, err
	}

	request := models.ItemRequest{
		Description: description,
		RequesterID: requesterID,
	}

	err := s.DB.QueryRow(`
		INSERT INTO requests (description, requester_id)
		VALUES ($1, $2)
		RETURNING id, created`,
		description, requesterID).Scan(&request.ID, &request.Created)
	if err != nil {
		return models.ItemRequest{}, fmt.Errorf("failed to save request: %w", err)
	}

	return request, nil
}

func (s *Storage) RequestsByUser(userID int64) ([]models.ItemRequest, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, description, requester_id, created
		FROM requests
		WHERE requester_id = $1
		ORDER BY created DESC`

	return s.queryRequests(query, userID)
}

func (s *Storage) AllRequests(userID int64) ([]models.ItemRequest, error) {
	if err := s.ensureUser(userID); err != nil {
		return nil, err
	}

	query := `
		SELECT id, description, requester_id, created
		FROM requests
		ORDER BY created DESC`

	return s.queryRequests(query)
}

func (s *Storage) RequestByID(requestID, userID int64) (models.ItemRequest, error) {
	if err := s.ensureUser(userID); err != nil {
		return models.ItemRequest{}, err
	}

	var request models.ItemRequest
	err := s.DB.QueryRow(`
		SELECT id, description, requester_id, created
		FROM requests
		WHERE id = $1`, requestID).Scan(
		&request.ID,
		&request.Description,
		&request.RequesterID,
		&request.Created,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ItemRequest{}, storage.ErrRequestNotFound
		}
		return models.ItemRequest{}, fmt.Errorf("failed to get request: %w", err)
	}

	return request, nil
}

func (s *Storage) queryRequests(query string, args ...interface{}) ([]models.ItemRequest, error) {
	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get requests: %w", err)
	}
	defer rows.Close()

	var requests []models.ItemRequest
	for rows.Next() {
		var r models.ItemRequest
		err = rows.Scan(
			&r.ID,
			&r.Description,
			&r.RequesterID,
			&r.Created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating requests: %w", err)
	}

	return requests, nil
}
