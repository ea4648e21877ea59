package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"contabilito/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore opens an isolated in-memory database per test.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	st := New(db)
	require.NoError(t, st.EnsureSchema())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func countRows(t *testing.T, st *Store, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, st.db.Model(model).Count(&n).Error)
	return n
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	st := newTestStore(t)
	// A second provisioning run must not fail or duplicate structures.
	require.NoError(t, st.EnsureSchema())
	require.NoError(t, st.EnsureSchema())
}

func TestInsertUserNormalizesAndGeneratesID(t *testing.T) {
	st := newTestStore(t)
	user := &domain.User{
		Email:         "  Ada@Example.COM ",
		Username:      "AdaL",
		PasswordHash:  "hash",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		TermsAccepted: true,
	}
	require.NoError(t, st.InsertUser(context.Background(), user))
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "adal", user.Username)
}

func TestInsertUserDuplicateEmail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	first := &domain.User{Email: "dup@example.com", Username: "first", PasswordHash: "h", FirstName: "A", LastName: "B", TermsAccepted: true}
	require.NoError(t, st.InsertUser(ctx, first))

	// Same email in different casing, different username.
	second := &domain.User{Email: "DUP@example.com", Username: "second", PasswordHash: "h", FirstName: "C", LastName: "D", TermsAccepted: true}
	err := st.InsertUser(ctx, second)
	require.Error(t, err)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConstraintUserEmail, conflict.Constraint)
}

func TestInsertUserDuplicateUsername(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	first := &domain.User{Email: "a@example.com", Username: "same", PasswordHash: "h", FirstName: "A", LastName: "B", TermsAccepted: true}
	require.NoError(t, st.InsertUser(ctx, first))

	second := &domain.User{Email: "b@example.com", Username: "Same", PasswordHash: "h", FirstName: "C", LastName: "D", TermsAccepted: true}
	err := st.InsertUser(ctx, second)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConstraintUserUsername, conflict.Constraint)
}

func TestInsertCompanyDuplicateNameCaseInsensitive(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.InsertCompany(ctx, &domain.Company{Name: "Acme"}))

	err := st.InsertCompany(ctx, &domain.Company{Name: "acme"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConstraintCompanyName, conflict.Constraint)
}

func TestFindUserByIdentifier(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := &domain.User{Email: "a@b.com", Username: "ada", PasswordHash: "h", FirstName: "Ada", LastName: "L", TermsAccepted: true}
	require.NoError(t, st.InsertUser(ctx, user))

	// Email lookup ignores casing.
	found, err := st.FindUserByIdentifier(ctx, "A@B.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	// Username lookup ignores casing too.
	found, err = st.FindUserByIdentifier(ctx, "ADA")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = st.FindUserByIdentifier(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFindCompanyByName(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.InsertCompany(ctx, &domain.Company{Name: "Acme Corp"}))

	found, err := st.FindCompanyByName(ctx, "  ACME corp ")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.Name)

	_, err = st.FindCompanyByName(ctx, "Missing Inc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunInTransactionRollsBackAllWrites(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Fail after the user and company inserts but before the role insert:
	// nothing may survive.
	boom := fmt.Errorf("boom")
	err := st.RunInTransaction(ctx, func(tx *Store) error {
		user := &domain.User{Email: "tx@example.com", Username: "tx", PasswordHash: "h", FirstName: "T", LastName: "X", TermsAccepted: true}
		if err := tx.InsertUser(ctx, user); err != nil {
			return err
		}
		company := &domain.Company{Name: "Txco", OwnerUserID: &user.ID}
		if err := tx.InsertCompany(ctx, company); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Zero(t, countRows(t, st, &domain.User{}))
	assert.Zero(t, countRows(t, st, &domain.Company{}))
	assert.Zero(t, countRows(t, st, &domain.UserCompanyRole{}))
}

func TestRunInTransactionCommits(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.RunInTransaction(ctx, func(tx *Store) error {
		user := &domain.User{Email: "ok@example.com", Username: "ok", PasswordHash: "h", FirstName: "O", LastName: "K", TermsAccepted: true}
		if err := tx.InsertUser(ctx, user); err != nil {
			return err
		}
		company := &domain.Company{Name: "Okco", OwnerUserID: &user.ID}
		if err := tx.InsertCompany(ctx, company); err != nil {
			return err
		}
		return tx.InsertRole(ctx, &domain.UserCompanyRole{UserID: user.ID, CompanyID: company.ID, Role: domain.RoleOwner})
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, countRows(t, st, &domain.User{}))
	assert.EqualValues(t, 1, countRows(t, st, &domain.Company{}))
	assert.EqualValues(t, 1, countRows(t, st, &domain.UserCompanyRole{}))
}

func TestRoleFor(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := &domain.User{Email: "r@example.com", Username: "roley", PasswordHash: "h", FirstName: "R", LastName: "O", TermsAccepted: true}
	require.NoError(t, st.InsertUser(ctx, user))
	company := &domain.Company{Name: "Roleco", OwnerUserID: &user.ID}
	require.NoError(t, st.InsertCompany(ctx, company))
	require.NoError(t, st.InsertRole(ctx, &domain.UserCompanyRole{UserID: user.ID, CompanyID: company.ID, Role: domain.RoleOwner}))

	role, err := st.RoleFor(ctx, user.ID, company.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, role)

	_, err = st.RoleFor(ctx, user.ID+1, company.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyBalanceSkipsDeletedAccounts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	company := &domain.Company{Name: "Balco"}
	require.NoError(t, st.InsertCompany(ctx, company))

	checking := &domain.Account{CompanyID: company.ID, Name: "Checking", InitialBalance: 1500}
	savings := &domain.Account{CompanyID: company.ID, Name: "Savings", InitialBalance: 500}
	require.NoError(t, st.InsertAccount(ctx, checking))
	require.NoError(t, st.InsertAccount(ctx, savings))

	// Soft-delete one account; its balance must drop out of the sum.
	require.NoError(t, st.db.Delete(savings).Error)

	total, err := st.CompanyBalance(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, total)
}

func TestLatestTransactionsOrderAndLimit(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	user := &domain.User{Email: "t@example.com", Username: "teller", PasswordHash: "h", FirstName: "T", LastName: "E", TermsAccepted: true}
	require.NoError(t, st.InsertUser(ctx, user))
	company := &domain.Company{Name: "Txnco", OwnerUserID: &user.ID}
	require.NoError(t, st.InsertCompany(ctx, company))
	account := &domain.Account{CompanyID: company.ID, Name: "Checking"}
	require.NoError(t, st.InsertAccount(ctx, account))

	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		tx := &domain.Transaction{
			CompanyID:       company.ID,
			UserID:          user.ID,
			AccountID:       account.ID,
			Type:            domain.TypeIncome,
			Amount:          float64(i + 1),
			TransactionDate: base.AddDate(0, 0, i),
		}
		require.NoError(t, st.InsertTransaction(ctx, tx))
	}

	txs, err := st.LatestTransactions(ctx, company.ID, 5)
	require.NoError(t, err)
	require.Len(t, txs, 5)
	// Newest first.
	assert.Equal(t, 7.0, txs[0].Amount)
	assert.Equal(t, 3.0, txs[4].Amount)
}

func TestInsertAccountDuplicateNameWithinCompany(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()
	company := &domain.Company{Name: "Accoco"}
	require.NoError(t, st.InsertCompany(ctx, company))
	other := &domain.Company{Name: "Otherco"}
	require.NoError(t, st.InsertCompany(ctx, other))

	require.NoError(t, st.InsertAccount(ctx, &domain.Account{CompanyID: company.ID, Name: "Checking"}))

	// Same name in the same company conflicts.
	err := st.InsertAccount(ctx, &domain.Account{CompanyID: company.ID, Name: "Checking"})
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.ConstraintAccountName, conflict.Constraint)

	// Same name in another company is fine.
	require.NoError(t, st.InsertAccount(ctx, &domain.Account{CompanyID: other.ID, Name: "Checking"}))
}
