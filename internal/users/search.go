package users

import (
	"context"
	"strings"

	"github.com/padronapp/padron/pkg/pagination"
)

// matchFunc is a per-record search predicate applied during a collection scan.
type matchFunc func(User) bool

func matchEmail(q string) matchFunc {
	needle := strings.ToLower(q)
	return func(u User) bool {
		return strings.Contains(u.Email, needle)
	}
}

func matchName(q string) matchFunc {
	needle := Normalize(q)
	return func(u User) bool {
		return strings.Contains(u.NameNormalized, needle)
	}
}

func matchDocument(q string) matchFunc {
	needle := strings.ToUpper(q)
	return func(u User) bool {
		return strings.Contains(u.DocumentID, needle)
	}
}

// matchAny matches a record when the query is found in the document id, the
// normalized name, or the email, each under that field's own normalization
// rule. The first matching field short-circuits.
func matchAny(q string) matchFunc {
	byDocument := matchDocument(q)
	byName := matchName(q)
	byEmail := matchEmail(q)

	return func(u User) bool {
		return byDocument(u) || byName(u) || byEmail(u)
	}
}

func filterUsers(usuarios []User, match matchFunc) []User {
	if match == nil {
		return usuarios
	}

	matches := make([]User, 0, len(usuarios))
	for _, u := range usuarios {
		if match(u) {
			matches = append(matches, u)
		}
	}
	return matches
}

// search scans the full collection, filters with match, and windows the
// result. The total always reflects the match count before windowing, and a
// zero-match scan fails with ErrNoResults before any slicing happens.
func (r *repo) search(ctx context.Context, page pagination.Page, match matchFunc) (*pagination.Result[User], error) {
	page.Normalize(r.pagination)

	usuarios, err := r.all(ctx)
	if err != nil {
		return nil, err
	}

	matches := filterUsers(usuarios, match)
	if len(matches) == 0 {
		return nil, ErrNoResults
	}

	result := pagination.NewResult(matches, page)
	return &result, nil
}

func (r *repo) List(ctx context.Context, page pagination.Page) (*pagination.Result[User], error) {
	return r.search(ctx, page, nil)
}

func (r *repo) SearchByEmail(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error) {
	return r.search(ctx, page, matchEmail(q))
}

func (r *repo) SearchByName(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error) {
	return r.search(ctx, page, matchName(q))
}

func (r *repo) SearchByDocument(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error) {
	return r.search(ctx, page, matchDocument(q))
}

func (r *repo) SearchAny(ctx context.Context, q string, page pagination.Page) (*pagination.Result[User], error) {
	return r.search(ctx, page, matchAny(q))
}

func (r *repo) ExactEmail(ctx context.Context, email string) (*User, error) {
	return r.findByEmail(ctx, email)
}

func (r *repo) ExactDocument(ctx context.Context, documentID string) (*User, error) {
	return r.find(ctx, strings.ToUpper(documentID))
}
