package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/16mdiqbal/cronjobctl/internal/bulkupload"
)

func TestBulkUploadMultipartFields(t *testing.T) {
	var gotCSV, gotOwner string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		raw, err := io.ReadAll(file)
		require.NoError(t, err)
		gotCSV = string(raw)
		gotOwner = r.FormValue("default_github_owner")

		_ = json.NewEncoder(w).Encode(BulkUploadResult{CreatedCount: 1})
	}))
	defer srv.Close()

	c := New(srv.URL, fastRetry())
	res, err := c.BulkUpload(context.Background(), "A,B\r\n1,2\r\n", "acme")
	require.NoError(t, err)

	assert.Equal(t, 1, res.CreatedCount)
	assert.Equal(t, "A,B\r\n1,2\r\n", gotCSV)
	assert.Equal(t, "acme", gotOwner)
}

func TestBulkUploadPartialSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(BulkUploadResult{
			CreatedCount: 2,
			ErrorCount:   1,
			Errors: []bulkupload.Error{
				{Row: 4, Category: bulkupload.CategoryInvalidTeam, Message: "unknown PIC team"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, fastRetry())
	res, err := c.BulkUpload(context.Background(), "csv", "")
	require.NoError(t, err)

	// partial success is a result, not an error
	assert.Equal(t, 2, res.CreatedCount)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 4, res.Errors[0].Row)
}

func TestBulkUploadServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"file too large"}`, http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	c := New(srv.URL, fastRetry())
	_, err := c.BulkUpload(context.Background(), "csv", "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusRequestEntityTooLarge, apiErr.StatusCode)
}
