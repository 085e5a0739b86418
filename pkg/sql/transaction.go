package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mobileheap/profilecard/pkg/persistence"
	pkgsync "github.com/mobileheap/profilecard/pkg/sync"
)

type instanceID string

type txData struct {
	ClientTx
	instanceID instanceID
}

type transaction struct {
	id       instanceID
	client   TxClient
	critical pkgsync.CriticalSection
	onCommit func()
}

// NewTransaction returns a context-carried transaction: nested WithinContext
// calls with the same instanceName join the outer transaction. onCommit fires
// once per top-level commit. Named locks are in-process critical sections,
// sqlite has no shared lock facility.
func NewTransaction(client TxClient, instanceName string, onCommit func()) persistence.Transaction {
	return &transaction{
		id:       instanceID(instanceName),
		client:   client,
		critical: pkgsync.NewCriticalSection(),
		onCommit: onCommit,
	}
}

func (t *transaction) WithinContext(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) error {
	execute := func() error { return t.withinContextImpl(ctx, fn) }
	for i := len(lockNames) - 1; i >= 0; i-- {
		lockName := lockNames[i]
		next := execute
		execute = func() error {
			return t.critical.Execute(ctx, lockName, next)
		}
	}

	return execute()
}

func (t *transaction) withinContextImpl(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx.instanceID = t.id
		storedTx.ClientTx = tx
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	if t.onCommit != nil {
		t.onCommit()
	}

	return nil
}

// NewTransactionalClient wraps a client so queries issued with a transactional
// context run inside that transaction.
func NewTransactionalClient(client Client) Client {
	return &transactionalClient{client: client}
}

type transactionalClient struct {
	client Client
}

func (c *transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.ExecContext(ctx, query, args...)
	}
	return c.client.ExecContext(ctx, query, args...)
}

func (c *transactionalClient) NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error) {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.NamedExecContext(ctx, query, arg)
	}
	return c.client.NamedExecContext(ctx, query, arg)
}

func (c *transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return c.client.GetContext(ctx, dest, query, args...)
}

func (c *transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	if tx, ok := ctx.Value(dbTransactionContextKey).(txData); ok {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return c.client.SelectContext(ctx, dest, query, args...)
}
