package bq_test

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/goccy/bigquery-emulator/types"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/bq"
	"github.com/securebi/securebi-backend/pkg/bq/emulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func salesDataset() *emulator.Dataset {
	return &emulator.Dataset{
		DatasetID: "warehouse",
		TableID:   "sales",
		Columns: []*types.Column{
			emulator.Column("region", types.STRING),
			emulator.Column("amount", types.FLOAT64),
		},
		Rows: types.Data{
			{"region": "north", "amount": 10.5},
			{"region": "south", "amount": 20.0},
			{"region": "east", "amount": 7.25},
		},
	}
}

func TestClient_GetDataset(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		conn      bq.Connection
		datasetID string
		schema    *emulator.Dataset
		mocks     []*emulator.EndpointMock
		expect    *bq.Dataset
		expectErr error
	}{
		{
			name:      "success",
			conn:      bq.Connection{ProjectID: "test-project"},
			datasetID: "warehouse",
			schema:    salesDataset(),
			expect: &bq.Dataset{
				ProjectID: "test-project",
				DatasetID: "warehouse",
			},
		},
		{
			name:      "not found",
			conn:      bq.Connection{ProjectID: "test-project"},
			datasetID: "warehouse",
			expectErr: bq.ErrNotExist,
		},
		{
			name:      "permission denied",
			conn:      bq.Connection{ProjectID: "test-project"},
			datasetID: "warehouse",
			schema:    salesDataset(),
			mocks: []*emulator.EndpointMock{
				emulator.DatasetGetErrorMock("test-project", "warehouse", http.StatusForbidden, "Access Denied"),
			},
			expectErr: bq.ErrPermissionDenied,
		},
		{
			name:      "invalid credentials",
			conn:      bq.Connection{ProjectID: "test-project", CredentialsJSON: []byte("{not json")},
			datasetID: "warehouse",
			schema:    salesDataset(),
			expectErr: bq.ErrInvalidCredentials,
		},
		{
			name:      "missing project",
			conn:      bq.Connection{},
			datasetID: "warehouse",
			schema:    salesDataset(),
			expectErr: errors.New("validating connection"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := emulator.New(zerolog.New(os.Stdout))
			defer s.Cleanup()

			s.WithProject("test-project", tc.schema)
			if len(tc.mocks) > 0 {
				s.EnableMock(false, tc.mocks...)
			}
			s.TestServer()

			c := bq.NewClient(s.Endpoint(), false, zerolog.Nop())

			got, err := c.GetDataset(context.Background(), tc.conn, tc.datasetID)
			if tc.expectErr != nil {
				require.Error(t, err)
				assert.Nil(t, got)

				if errors.Is(tc.expectErr, bq.ErrNotExist) || errors.Is(tc.expectErr, bq.ErrPermissionDenied) || errors.Is(tc.expectErr, bq.ErrInvalidCredentials) {
					assert.ErrorIs(t, err, tc.expectErr)
				} else {
					assert.Contains(t, err.Error(), tc.expectErr.Error())
				}

				return
			}

			require.NoError(t, err)
			diff := cmp.Diff(tc.expect, got, cmpopts.IgnoreFields(bq.Dataset{}, "Location"))
			assert.Empty(t, diff)
		})
	}
}

func TestClient_GetTables(t *testing.T) {
	t.Parallel()

	s := emulator.New(zerolog.New(os.Stdout))
	defer s.Cleanup()

	s.WithProject("test-project", salesDataset())
	s.TestServer()

	c := bq.NewClient(s.Endpoint(), false, zerolog.Nop())

	got, err := c.GetTables(context.Background(), bq.Connection{ProjectID: "test-project"}, "warehouse")
	require.NoError(t, err)

	expect := []*bq.Table{
		{
			ProjectID: "test-project",
			DatasetID: "warehouse",
			TableID:   "sales",
			Type:      bq.RegularTable,
			Schema: []*bq.Column{
				{
					Name: "region",
					Type: bq.StringFieldType,
				},
				{
					Name: "amount",
					Type: bq.FloatFieldType,
				},
			},
		},
	}

	diff := cmp.Diff(
		expect,
		got,
		cmpopts.IgnoreFields(bq.Table{}, "LastModified", "Created", "NumRows"),
	)
	assert.Empty(t, diff)
}

func TestClient_GetTables_DatasetNotFound(t *testing.T) {
	t.Parallel()

	s := emulator.New(zerolog.New(os.Stdout))
	defer s.Cleanup()

	s.WithProject("test-project", salesDataset())
	s.TestServer()

	c := bq.NewClient(s.Endpoint(), false, zerolog.Nop())

	got, err := c.GetTables(context.Background(), bq.Connection{ProjectID: "test-project"}, "does_not_exist")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, bq.ErrNotExist)
}

func TestClient_Query(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		query   string
		maxRows int
		expect  *bq.QueryResult
	}{
		{
			name:    "all rows",
			query:   "SELECT region, amount FROM `test-project.warehouse.sales` ORDER BY region",
			maxRows: 0,
			expect: &bq.QueryResult{
				Columns: []string{"region", "amount"},
				Rows: []map[string]any{
					{"region": "east", "amount": 7.25},
					{"region": "north", "amount": 10.5},
					{"region": "south", "amount": 20.0},
				},
			},
		},
		{
			name:    "capped by max rows",
			query:   "SELECT region FROM `test-project.warehouse.sales` ORDER BY region",
			maxRows: 2,
			expect: &bq.QueryResult{
				Columns: []string{"region"},
				Rows: []map[string]any{
					{"region": "east"},
					{"region": "north"},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := emulator.New(zerolog.New(os.Stdout))
			defer s.Cleanup()

			s.WithProject("test-project", salesDataset())
			s.TestServer()

			c := bq.NewClient(s.Endpoint(), false, zerolog.Nop())

			got, err := c.Query(context.Background(), bq.Connection{ProjectID: "test-project", Source: "Sales Warehouse"}, tc.query, tc.maxRows)
			require.NoError(t, err)

			if diff := cmp.Diff(tc.expect, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
