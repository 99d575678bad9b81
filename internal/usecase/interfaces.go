package usecase

import "context"

// FirebaseAuthClient is the slice of the auth provider the usecases need.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

// EmailSender sends one plain-text message. Reminder jobs treat a failed send
// as a per-recipient problem, not a batch failure.
type EmailSender interface {
	Send(to, subject, body string) error
}
