package database

import (
	"database/sql"
	"fmt"
)

func IsUserWhitelisted(db *sql.DB, userID int64) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM whitelist WHERE user_id = ?)"

	err := db.QueryRow(query, userID).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("помилка перевірки whitelist: %w", err)
	}

	return exists, nil
}

func InsertIntoWhitelist(db *sql.DB, username string, id int64) error {
	_, err := db.Exec(`INSERT OR IGNORE INTO whitelist (user_id, username) VALUES (?, ?)`, id, username)
	return err
}

func DeleteFromWhitelist(db *sql.DB, username string) error {
	_, err := db.Exec("DELETE FROM whitelist WHERE username = ?", username)
	return err
}

func GetAllWhitelist(db *sql.DB) ([]int64, []string, error) {
	rows, err := db.Query("SELECT user_id, username FROM whitelist")
	if err != nil {
		return nil, nil, fmt.Errorf("помилка запиту до БД: %w", err)
	}
	defer rows.Close()

	var allId []int64
	var usernames []string
	for rows.Next() {
		var id int64
		var username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, nil, err
		}
		allId = append(allId, id)
		usernames = append(usernames, username)
	}
	return allId, usernames, rows.Err()
}
