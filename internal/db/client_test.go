// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_db.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package db -destination ./mock_logger.go -source=../logging/interfaces.go

func newTestClient(ctrl *gomock.Controller, tx TxInterface, beginErr error) (*DBClient, *int) {
	begins := new(int)

	d := new(DBClient)
	d.logger = NewMockLoggerInterface(ctrl)
	d.begin = func(context.Context) (TxInterface, error) {
		*begins++
		return tx, beginErr
	}

	return d, begins
}

func TestDBClient_WithTx(t *testing.T) {
	tests := []struct {
		name          string
		fn            func(d *DBClient) func(context.Context) error
		setupMocks    func(*MockTxInterface)
		expectedBegin int
		wantErr       bool
	}{
		{
			name: "No statement opens no transaction",
			fn: func(*DBClient) func(context.Context) error {
				return func(context.Context) error { return nil }
			},
			setupMocks:    func(*MockTxInterface) {},
			expectedBegin: 0,
		},
		{
			name: "Statements share one committed transaction",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					d.Statement(ctx)
					d.Statement(ctx)
					return nil
				}
			},
			setupMocks: func(tx *MockTxInterface) {
				tx.EXPECT().Commit().Return(nil)
			},
			expectedBegin: 1,
		},
		{
			name: "Failure rolls back",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					d.Statement(ctx)
					return errors.New("duplicate organization")
				}
			},
			setupMocks: func(tx *MockTxInterface) {
				tx.EXPECT().Rollback().Return(nil)
			},
			expectedBegin: 1,
			wantErr:       true,
		},
		{
			name: "Nested calls join the outer transaction",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					d.Statement(ctx)
					return d.WithTx(ctx, func(ctx context.Context) error {
						d.Statement(ctx)
						return nil
					})
				}
			},
			setupMocks: func(tx *MockTxInterface) {
				tx.EXPECT().Commit().Return(nil)
			},
			expectedBegin: 1,
		},
		{
			name: "Commit failure is returned",
			fn: func(d *DBClient) func(context.Context) error {
				return func(ctx context.Context) error {
					d.Statement(ctx)
					return nil
				}
			},
			setupMocks: func(tx *MockTxInterface) {
				tx.EXPECT().Commit().Return(errors.New("serialization failure"))
			},
			expectedBegin: 1,
			wantErr:       true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTx := NewMockTxInterface(ctrl)
			test.setupMocks(mockTx)

			d, begins := newTestClient(ctrl, mockTx, nil)

			err := d.WithTx(context.Background(), test.fn(d))
			if (err != nil) != test.wantErr {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}

			if *begins != test.expectedBegin {
				t.Errorf("expected %d transactions, got %d", test.expectedBegin, *begins)
			}
		})
	}
}

func TestDBClient_WithTxBeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d, _ := newTestClient(ctrl, nil, errors.New("too many connections"))
	d.logger.(*MockLoggerInterface).EXPECT().Errorf(gomock.Any(), gomock.Any())

	err := d.WithTx(context.Background(), func(ctx context.Context) error {
		if txFromContext(ctx).tx != nil {
			t.Errorf("expected no transaction")
		}
		d.Statement(ctx)
		return errors.New("statement failed")
	})

	if err == nil {
		t.Fatalf("expected the statement error")
	}
}
