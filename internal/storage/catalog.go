package storage

import (
	"slices"
	"strings"

	"github.com/azaliaz/folioverse/internal/domain/models"
	"github.com/azaliaz/folioverse/internal/logger"
	storerrros "github.com/azaliaz/folioverse/internal/storage/errors"
)

// Catalog keeps books in insertion order. Titles are not unique; when two
// books share a title the first one inserted wins every lookup.
type Catalog struct {
	books []models.Book
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) SaveBook(book models.Book) error {
	log := logger.Get()
	c.books = append(c.books, book)
	log.Info().Str("title", book.Title).Str("author", book.Author).Msg("book saved")
	return nil
}

func (c *Catalog) GetBooks() ([]models.Book, error) {
	if len(c.books) < 1 {
		return nil, storerrros.ErrEmptyBooksList
	}
	return slices.Clone(c.books), nil
}

func (c *Catalog) GetBook(title string) (models.Book, error) {
	log := logger.Get()
	for _, book := range c.books {
		if strings.EqualFold(book.Title, title) {
			return book, nil
		}
	}
	log.Debug().Str("title", title).Msg("book not found")
	return models.Book{}, storerrros.ErrBookNotFound
}
