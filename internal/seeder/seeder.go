package seeder

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v7"

	"quotesearch/internal/quote/model"
	"quotesearch/internal/quote/repository"
	"quotesearch/pkg/logger"
)

// DefaultCount matches the historical size of the demo dataset.
const DefaultCount = 10000

// Seeder populates the quote store with synthetic records. The faker is
// constructed per Seeder rather than shared process-wide, so concurrent or
// repeated batches never contend on a global generator.
type Seeder struct {
	Repo  *repository.QuoteRepository
	Faker *gofakeit.Faker
}

// New builds a Seeder around its own faker instance. Seed 0 picks a random
// source; any other value makes the batch reproducible.
func New(repo *repository.QuoteRepository, seed uint64) *Seeder {
	return &Seeder{Repo: repo, Faker: gofakeit.New(seed)}
}

// Run inserts count synthetic quotes, one per iteration. The first failed
// insert aborts the batch and is reported to the operator; rows already
// written stay written.
func (s *Seeder) Run(count int) error {
	if count < 1 {
		count = DefaultCount
	}

	for i := 0; i < count; i++ {
		name := clamp(s.Faker.Name(), model.MaxNameLength)
		text := clamp(s.Faker.Paragraph(1, 3, 12, " "), model.MaxQuoteLength)
		if _, err := s.Repo.Create(name, text); err != nil {
			return fmt.Errorf("seeding aborted after %d of %d quotes: %w", i, count, err)
		}
	}

	logger.Sugar.Infof("Completed!!! Seeded %d quotes, check your database.", count)
	return nil
}

func clamp(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
