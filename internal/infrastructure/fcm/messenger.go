package fcm

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Messenger sends push messages through Firebase Cloud Messaging. It is a
// single-attempt sender; retry policy belongs to the caller.
type Messenger struct {
	client *messaging.Client
}

// NewMessenger builds the FCM client. With an empty credentials file the
// SDK falls back to application default credentials.
func NewMessenger(ctx context.Context, credentialsFile string) (*Messenger, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	return &Messenger{client: client}, nil
}

// Send addresses one device token with a data-only payload. The client app
// renders title and content itself.
func (m *Messenger) Send(ctx context.Context, token, title, content string) error {
	msg := &messaging.Message{
		Data: map[string]string{
			"title":   title,
			"content": content,
		},
		Token: token,
	}

	_, err := m.client.Send(ctx, msg)
	return err
}
