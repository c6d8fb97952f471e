package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

func runClientRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create and Get round-trip", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		amount := 5000.0
		day := 15
		created, err := repo.Client().Create(ctx, &model.CreateClientInput{
			Name:        "Ivan",
			Contact:     "@ivan",
			PaymentType: types.PaymentMonthly,
			Amount:      &amount,
			Currency:    "RUB",
			PaymentDay:  &day,
		})
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID.String()).NotEqual("")
		gt.Bool(t, created.CreatedAt.IsZero()).False()

		got, err := repo.Client().Get(ctx, created.ID)
		gt.NoError(t, err).Required()
		gt.Value(t, got.Name).Equal("Ivan")
		gt.Value(t, got.Contact).Equal("@ivan")
		gt.Value(t, got.PaymentType).Equal(types.PaymentMonthly)
		gt.Value(t, *got.Amount).Equal(5000.0)
		gt.Value(t, *got.PaymentDay).Equal(15)
	})

	t.Run("Get returns ErrNotFound for unknown id", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Client().Get(context.Background(), types.NewClientID())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})

	t.Run("List sorts by name", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for _, name := range []string{"zoe", "Alice", "mark"} {
			_, err := repo.Client().Create(ctx, &model.CreateClientInput{
				Name:        name,
				PaymentType: types.PaymentMonthly,
				Currency:    "RUB",
			})
			gt.NoError(t, err).Required()
		}

		clients, err := repo.Client().List(ctx)
		gt.NoError(t, err).Required()
		gt.Array(t, clients).Length(3)
		gt.Value(t, clients[0].Name).Equal("Alice")
		gt.Value(t, clients[1].Name).Equal("mark")
		gt.Value(t, clients[2].Name).Equal("zoe")
	})

	t.Run("TogglePayment upserts per period", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		client, err := repo.Client().Create(ctx, &model.CreateClientInput{
			Name:        "Ivan",
			PaymentType: types.PaymentMonthly,
			Currency:    "RUB",
		})
		gt.NoError(t, err).Required()

		gt.NoError(t, repo.Client().TogglePayment(ctx, client.ID, "2026-08", true)).Required()

		payments, err := repo.Client().ListPayments(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, payments).Length(1)
		gt.Value(t, payments[0].Paid).Equal(true)
		gt.Value(t, payments[0].PaidAt).NotNil()

		// Flip the same period back
		gt.NoError(t, repo.Client().TogglePayment(ctx, client.ID, "2026-08", false)).Required()

		payments, err = repo.Client().ListPayments(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, payments).Length(1)
		gt.Value(t, payments[0].Paid).Equal(false)

		gt.NoError(t, repo.Client().TogglePayment(ctx, client.ID, "2026-09", true)).Required()

		payments, err = repo.Client().ListPayments(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, payments).Length(2)
	})

	t.Run("ListPayments orders latest period first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		client, err := repo.Client().Create(ctx, &model.CreateClientInput{
			Name:        "Ivan",
			PaymentType: types.PaymentMonthly,
			Currency:    "RUB",
		})
		gt.NoError(t, err).Required()

		for _, period := range []string{"2026-07", "2026-09", "2026-08"} {
			gt.NoError(t, repo.Client().TogglePayment(ctx, client.ID, period, true)).Required()
		}

		payments, err := repo.Client().ListPayments(ctx, client.ID)
		gt.NoError(t, err).Required()
		gt.Array(t, payments).Length(3)
		gt.Value(t, payments[0].Period).Equal("2026-09")
		gt.Value(t, payments[1].Period).Equal("2026-08")
		gt.Value(t, payments[2].Period).Equal("2026-07")
	})

	t.Run("TogglePayment for unknown client fails", func(t *testing.T) {
		repo := newRepo(t)

		err := repo.Client().TogglePayment(context.Background(), types.NewClientID(), "2026-08", true)
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, interfaces.ErrNotFound)).True()
	})
}

func TestClientRepository_Memory(t *testing.T) {
	runClientRepositoryTest(t, newMemoryRepo)
}

func TestClientRepository_SQLite(t *testing.T) {
	runClientRepositoryTest(t, newSQLiteRepo)
}
