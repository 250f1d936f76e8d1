package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/padronapp/padron/pkg/pagination"
	"github.com/padronapp/padron/pkg/repository"
	"github.com/padronapp/padron/pkg/storage"
)

const userColumns = "documento_identidad, nombre, email, fecha_nacimiento, foto, nombre_normalizado, nombre_minusculas"

// duplicateErrs resolves Postgres unique violations by constraint name.
var duplicateErrs = map[string]error{
	"usuarios_pkey":      ErrDuplicateDocument,
	"usuarios_email_key": ErrDuplicateEmail,
	"":                   ErrDuplicateDocument,
}

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a user registry repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "users"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*User, error) {
	u, err := buildUser(cmd)
	if err != nil {
		return nil, err
	}

	if _, err := r.find(ctx, u.DocumentID); err == nil {
		return nil, ErrDuplicateDocument
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if _, err := r.findByEmail(ctx, u.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	created, err := r.insert(ctx, r.db, u)
	if err != nil {
		return nil, err
	}

	r.logger.Info("usuario registrado", "documento", created.DocumentID)
	return created, nil
}

func (r *repo) Get(ctx context.Context, documentID string) (*User, error) {
	return r.find(ctx, strings.ToUpper(documentID))
}

func (r *repo) Update(ctx context.Context, documentID string, patch Patch) (*User, error) {
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	key := strings.ToUpper(documentID)
	current, err := r.find(ctx, key)
	if err != nil {
		return nil, err
	}

	if patch.DocumentID != nil {
		if err := ValidateDocumentID(*patch.DocumentID); err != nil {
			return nil, err
		}
		if newKey := strings.ToUpper(*patch.DocumentID); newKey != key {
			return r.rename(ctx, current, newKey, patch)
		}
	}

	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	assign := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		if err := ValidateName(*patch.Name); err != nil {
			return nil, err
		}
		assign("nombre", *patch.Name)
		assign("nombre_normalizado", Normalize(*patch.Name))
		assign("nombre_minusculas", strings.ToLower(*patch.Name))
	}
	if patch.Email != nil {
		if err := ValidateEmail(*patch.Email); err != nil {
			return nil, err
		}
		assign("email", strings.ToLower(*patch.Email))
	}
	if patch.BirthDate != nil {
		birth, err := ValidateBirthDate(*patch.BirthDate)
		if err != nil {
			return nil, err
		}
		assign("fecha_nacimiento", birth.ISO())
	}

	if len(set) == 0 {
		return current, nil
	}

	args = append(args, key)
	q := fmt.Sprintf(
		"UPDATE usuarios SET %s WHERE documento_identidad = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), userColumns,
	)

	updated, err := repository.QueryOne(ctx, r.db, q, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, duplicateErrs)
	}

	r.logger.Info("usuario actualizado", "documento", key)
	return &updated, nil
}

// rename moves a record to a new document key: the merged record is written
// under the new key and the old row is deleted, both inside one transaction.
func (r *repo) rename(ctx context.Context, current *User, newKey string, patch Patch) (*User, error) {
	if _, err := r.find(ctx, newKey); err == nil {
		return nil, ErrDuplicateDocument
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	merged := *current
	merged.DocumentID = newKey

	if patch.Name != nil {
		if err := ValidateName(*patch.Name); err != nil {
			return nil, err
		}
		merged.Name = *patch.Name
		merged.NameNormalized = Normalize(*patch.Name)
		merged.NameLower = strings.ToLower(*patch.Name)
	}
	if patch.Email != nil {
		if err := ValidateEmail(*patch.Email); err != nil {
			return nil, err
		}
		merged.Email = strings.ToLower(*patch.Email)
	}
	if patch.BirthDate != nil {
		birth, err := ValidateBirthDate(*patch.BirthDate)
		if err != nil {
			return nil, err
		}
		merged.BirthDate = birth
	}

	moved, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		inserted, err := r.insert(ctx, tx, merged)
		if err != nil {
			return User{}, err
		}

		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM usuarios WHERE documento_identidad = $1",
			current.DocumentID,
		); err != nil {
			return User{}, err
		}

		return *inserted, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, duplicateErrs)
	}

	r.logger.Info(
		"documento actualizado",
		"anterior", current.DocumentID,
		"nuevo", newKey,
	)
	return &moved, nil
}

func (r *repo) Delete(ctx context.Context, documentID string) error {
	key := strings.ToUpper(documentID)

	u, err := r.find(ctx, key)
	if err != nil {
		return err
	}

	if u.PhotoURL != nil && *u.PhotoURL != "" {
		r.deleteBlobByURL(ctx, *u.PhotoURL)
	}

	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM usuarios WHERE documento_identidad = $1",
		key,
	); err != nil {
		return repository.MapError(err, ErrNotFound, duplicateErrs)
	}

	r.logger.Info("usuario eliminado", "documento", key)
	return nil
}

func (r *repo) find(ctx context.Context, documentID string) (*User, error) {
	q := fmt.Sprintf("SELECT %s FROM usuarios WHERE documento_identidad = $1", userColumns)

	u, err := repository.QueryOne(ctx, r.db, q, []any{documentID}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, duplicateErrs)
	}
	return &u, nil
}

func (r *repo) findByEmail(ctx context.Context, email string) (*User, error) {
	q := fmt.Sprintf("SELECT %s FROM usuarios WHERE email = $1", userColumns)

	u, err := repository.QueryOne(ctx, r.db, q, []any{strings.ToLower(email)}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, duplicateErrs)
	}
	return &u, nil
}

// all streams every row of the collection in key order. Substring search
// deliberately filters this snapshot in memory instead of pushing predicates
// into SQL; the registry is small and the scan contract keeps the predicates
// in one place.
func (r *repo) all(ctx context.Context) ([]User, error) {
	q := fmt.Sprintf("SELECT %s FROM usuarios ORDER BY documento_identidad", userColumns)

	usuarios, err := repository.QueryMany(ctx, r.db, q, nil, scanUser)
	if err != nil {
		return nil, fmt.Errorf("scan usuarios: %w", err)
	}
	return usuarios, nil
}

func (r *repo) insert(ctx context.Context, q repository.Querier, u User) (*User, error) {
	stmt := fmt.Sprintf(`
		INSERT INTO usuarios(%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s`, userColumns, userColumns)

	args := []any{
		u.DocumentID,
		u.Name,
		u.Email,
		u.BirthDate.ISO(),
		u.PhotoURL,
		u.NameNormalized,
		u.NameLower,
	}

	inserted, err := repository.QueryOne(ctx, q, stmt, args, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, duplicateErrs)
	}
	return &inserted, nil
}

func scanUser(s repository.Scanner) (User, error) {
	var (
		u     User
		birth string
	)

	if err := s.Scan(
		&u.DocumentID,
		&u.Name,
		&u.Email,
		&birth,
		&u.PhotoURL,
		&u.NameNormalized,
		&u.NameLower,
	); err != nil {
		return User{}, err
	}

	parsed, err := ParseDate(birth)
	if err != nil {
		return User{}, fmt.Errorf("stored birth date %q: %w", birth, err)
	}
	u.BirthDate = parsed

	return u, nil
}
