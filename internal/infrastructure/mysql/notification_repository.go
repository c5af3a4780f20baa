package mysql

import (
	"context"
	"database/sql"

	"handsup-market/internal/domain"

	_ "github.com/go-sql-driver/mysql"
)

type MySQLNotificationRepository struct {
	db *sql.DB
}

func NewMySQLNotificationRepository(db *sql.DB) *MySQLNotificationRepository {
	return &MySQLNotificationRepository{db: db}
}

func (r *MySQLNotificationRepository) SaveNotification(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications (id, sender_email, receiver_email, content, type, auction_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.SenderEmail, n.ReceiverEmail, n.Content, string(n.Type), n.AuctionID, n.CreatedAt)
	return err
}

// FindByReceiver pages a user's notification inbox, newest first, with the
// same over-fetch-by-one slice convention the auction queries use.
func (r *MySQLNotificationRepository) FindByReceiver(ctx context.Context, receiverEmail string, page domain.PageRequest) (*domain.NotificationSlice, error) {
	query := `
        SELECT id, sender_email, receiver_email, content, type, auction_id, created_at
        FROM notifications
        WHERE receiver_email = ?
        ORDER BY created_at DESC
        LIMIT ? OFFSET ?
    `

	rows, err := r.db.QueryContext(ctx, query, receiverEmail, page.Size+1, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.Notification{}
	for rows.Next() {
		var n domain.Notification
		var typ string

		err := rows.Scan(&n.ID, &n.SenderEmail, &n.ReceiverEmail, &n.Content, &typ, &n.AuctionID, &n.CreatedAt)
		if err != nil {
			return nil, err
		}

		n.Type = domain.NotificationType(typ)
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(items) <= page.Size {
		return &domain.NotificationSlice{Items: items, HasNext: false}, nil
	}
	return &domain.NotificationSlice{Items: items[:page.Size], HasNext: true}, nil
}
