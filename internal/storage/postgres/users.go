package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"itemshare/internal/models"
	"itemshare/internal/storage"
)

func (s *Storage) SaveUser(user models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, email, login, birthday)
		VALUES ($1, $2, $3, $4)
		RETURNING id, registered`

	err := s.DB.QueryRow(query, user.Name, user.Email, user.Login, user.Birthday).
		Scan(&user.ID, &user.Registered)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrEmailExists
		}
		return models.User{}, fmt.Errorf("failed to save user: %w", err)
	}

	return user, nil
}

func (s *Storage) UserByID(id int64) (models.User, error) {
	query := `
		SELECT id, name, email, login, birthday, registered
		FROM users
		WHERE id = $1`

	var user models.User
	err := s.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Login,
		&user.Birthday,
		&user.Registered,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (s *Storage) AllUsers() ([]models.User, error) {
	query := `
		SELECT id, name, email, login, birthday, registered
		FROM users
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err = rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Login,
			&user.Birthday,
			&user.Registered,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

func (s *Storage) UpdateUser(id int64, patch models.UserPatch) (models.User, error) {
	set := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		set = append(set, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Email != nil {
		args = append(args, *patch.Email)
		set = append(set, fmt.Sprintf("email = $%d", len(args)))
	}

	if len(set) == 0 {
		return s.UserByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE id = $%d
		RETURNING id, name, email, login, birthday, registered`,
		strings.Join(set, ", "), len(args))

	var user models.User
	err := s.DB.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Login,
		&user.Birthday,
		&user.Registered,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return models.User{}, storage.ErrEmailExists
		}
		return models.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *Storage) DeleteUser(id int64) error {
	result, err := s.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if affected == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
