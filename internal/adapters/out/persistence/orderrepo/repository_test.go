package orderrepo_test

import (
	"context"
	"testing"

	"ordering/internal/adapters/out/persistence/persistencetest"

	"github.com/stretchr/testify/suite"
)

// SQLiteOrderRepositoryTestSuite runs the repository cases on a fresh
// in-memory SQLite database per test.
type SQLiteOrderRepositoryTestSuite struct {
	orderRepositoryCases
}

func (s *SQLiteOrderRepositoryTestSuite) SetupTest() {
	s.useDB(persistencetest.NewSQLiteDB(s.T()))
}

// Item rows come back in insertion order on SQLite, so the order can be asserted exactly here.
func (s *SQLiteOrderRepositoryTestSuite) TestFind_KeepsItemInsertionOrder() {
	ctx := context.Background()
	s.seed(ctx)
	o := s.newOrder("o1", "c1", s.newItem("i3", "p3", 1), s.newItem("i1", "p1", 1), s.newItem("i2", "p2", 1))
	s.Require().NoError(s.repository.Create(ctx, o))

	found, err := s.repository.Find(ctx, "o1")

	s.Require().NoError(err)
	s.Equal([]string{"i3", "i1", "i2"}, itemIDs(found))
}

func TestSQLiteOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteOrderRepositoryTestSuite))
}
