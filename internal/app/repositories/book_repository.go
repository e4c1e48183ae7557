package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jdelaney/ratemyclass/internal/app/models"
	"github.com/jdelaney/ratemyclass/internal/db"
	"github.com/jdelaney/ratemyclass/internal/pkg/dberrors"
)

// ErrBookNotFound is returned when a book is not found.
var ErrBookNotFound = ErrNotFound

// noTextbookSentinel is the literal users submit to say "no textbook".
const noTextbookSentinel = "n/a"

// BookRepository handles database operations for books
type BookRepository struct {
	db db.Querier
}

// NewBookRepository creates a new book repository
func NewBookRepository(q db.Querier) *BookRepository {
	return &BookRepository{db: q}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *BookRepository) WithTx(tx pgx.Tx) *BookRepository {
	return &BookRepository{db: tx}
}

const bookColumns = "book_id, title, isbn, created_at, updated_at"

func scanBook(row pgx.Row) (*models.Book, error) {
	var b models.Book
	if err := row.Scan(&b.ID, &b.Title, &b.ISBN, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

// IsISBN classifies a textbook reference: with hyphens and spaces stripped,
// an all-digit remainder is treated as an ISBN, anything else as a title.
func IsISBN(ref string) bool {
	stripped := strings.NewReplacer("-", "", " ", "").Replace(ref)
	if stripped == "" {
		return false
	}
	for _, ch := range stripped {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// GetOrCreate resolves a free-text textbook reference to a book row,
// creating one when none matches. Empty input or the "n/a" sentinel yields
// no book (nil, nil). The lookup matches the input against either ISBN or
// title.
func (r *BookRepository) GetOrCreate(ctx context.Context, textbookRef string) (*models.Book, error) {
	ref := strings.TrimSpace(textbookRef)
	if ref == "" || strings.EqualFold(ref, noTextbookSentinel) {
		return nil, nil
	}

	book, err := r.findByRef(ctx, ref)
	if err == nil {
		return book, nil
	}
	if !errors.Is(err, ErrBookNotFound) {
		return nil, err
	}

	var title, isbn *string
	if IsISBN(ref) {
		isbn = &ref
	} else {
		title = &ref
	}

	insert := `
		INSERT INTO books (title, isbn)
		VALUES ($1, $2)
		RETURNING ` + bookColumns + `
	`

	book, err = scanBook(r.db.QueryRow(ctx, insert, title, isbn))
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			// Concurrent first-use of the same ISBN
			return r.findByRef(ctx, ref)
		}
		return nil, fmt.Errorf("error creating book: %w", err)
	}

	return book, nil
}

func (r *BookRepository) findByRef(ctx context.Context, ref string) (*models.Book, error) {
	query := `
		SELECT ` + bookColumns + `
		FROM books
		WHERE isbn = $1 OR title = $1
		ORDER BY book_id ASC
		LIMIT 1
	`

	book, err := scanBook(r.db.QueryRow(ctx, query, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("error finding book: %w", err)
	}

	return book, nil
}
