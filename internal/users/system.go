package users

import (
	"context"
	"io"

	"github.com/padronapp/padron/pkg/pagination"
)

// System defines the public contract for user registry operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	Create(ctx context.Context, cmd CreateCommand) (*User, error)
	Get(ctx context.Context, documentID string) (*User, error)
	Update(ctx context.Context, documentID string, patch Patch) (*User, error)
	Delete(ctx context.Context, documentID string) error

	List(ctx context.Context, page pagination.Page) (*pagination.Result[User], error)
	SearchByEmail(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error)
	SearchByName(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error)
	SearchByDocument(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error)
	SearchAny(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error)
	ExactEmail(ctx context.Context, email string) (*User, error)
	ExactDocument(ctx context.Context, documentID string) (*User, error)

	Ingest(ctx context.Context, cmds []CreateCommand) *BatchReport
	IngestCSV(ctx context.Context, r io.Reader) (*BatchReport, error)

	UploadPhoto(ctx context.Context, documentID string, data []byte, contentType string) (string, error)
	GetPhoto(ctx context.Context, documentID string) (string, error)
	DeletePhoto(ctx context.Context, documentID string) error
}
