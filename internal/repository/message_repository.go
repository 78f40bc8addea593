package repository

import (
	"context"
	"fmt"

	"skill-swap/internal/database"
	"skill-swap/internal/domain/message"

	"github.com/google/uuid"
)

const messageSelect = `SELECT m.id, m.sender_id, s.name, m.receiver_id, r.name, m.content, m.is_read, m.created_at
	FROM messages m
	JOIN users s ON s.id = m.sender_id
	JOIN users r ON r.id = m.receiver_id`

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m message.Message) (message.Message, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at)
		 VALUES ($1, $2, $3, $4, false, $5)`,
		m.ID, m.SenderID, m.ReceiverID, m.Content, m.CreatedAt,
	)
	if err != nil {
		return message.Message{}, fmt.Errorf("insert message: %w", err)
	}
	return r.FindByID(ctx, m.ID)
}

func (r *PostgresMessageRepository) FindByID(ctx context.Context, id uuid.UUID) (message.Message, error) {
	row := r.db.QueryRow(ctx, messageSelect+` WHERE m.id = $1`, id)
	m, err := scanMessage(row)
	if err != nil {
		if database.IsNoRows(err) {
			return message.Message{}, message.ErrNotFound
		}
		return message.Message{}, err
	}
	return m, nil
}

func (r *PostgresMessageRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]message.Message, error) {
	return r.list(ctx,
		messageSelect+`
		 WHERE (m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)
		 ORDER BY m.created_at ASC, m.id ASC`,
		a, b,
	)
}

func (r *PostgresMessageRepository) ListUnreadForReceiver(ctx context.Context, receiverID uuid.UUID, limit int) ([]message.Message, error) {
	return r.list(ctx,
		messageSelect+`
		 WHERE m.receiver_id = $1 AND m.is_read = false
		 ORDER BY m.created_at DESC, m.id DESC
		 LIMIT $2`,
		receiverID, limit,
	)
}

func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `UPDATE messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return message.ErrNotFound
	}
	return nil
}

func (r *PostgresMessageRepository) list(ctx context.Context, query string, args ...any) ([]message.Message, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMessage(row database.Row) (message.Message, error) {
	var m message.Message
	err := row.Scan(&m.ID, &m.SenderID, &m.SenderName, &m.ReceiverID, &m.ReceiverName, &m.Content, &m.IsRead, &m.CreatedAt)
	return m, err
}
