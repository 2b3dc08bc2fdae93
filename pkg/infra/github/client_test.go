package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/isoshelf/pkg/domain/model"
	githubinfra "github.com/m-mizutani/isoshelf/pkg/infra/github"
)

func testSource() model.Source {
	return model.Source{
		Owner:  "octo",
		Repo:   "images",
		Folder: "OS",
		Branch: "release/1",
	}
}

func TestClient_ListDirectory_Success(t *testing.T) {
	var gotPath, gotRef string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRef = r.URL.Query().Get("ref")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{"name":"ubuntu-22.04.iso","path":"OS/ubuntu-22.04.iso","type":"file","size":3500000000,
			 "download_url":"https://example.com/ubuntu-22.04.iso",
			 "html_url":"https://github.com/octo/images/blob/main/OS/ubuntu-22.04.iso",
			 "updated_at":"2024-01-10T10:00:00Z"},
			{"name":"readme.txt","path":"OS/readme.txt","type":"file","size":12,
			 "download_url":"https://example.com/readme.txt","html_url":"https://example.com/readme",
			 "created_at":"2023-01-01T00:00:00Z"}
		]`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(server.URL)
	gt.NoError(t, err)

	entries, err := client.ListDirectory(context.Background(), testSource())
	gt.NoError(t, err)

	gt.Value(t, gotPath).Equal("/repos/octo/images/contents/OS")
	gt.Value(t, gotRef).Equal("release/1")

	gt.A(t, entries).Length(2)
	gt.Value(t, entries[0].Name).Equal("ubuntu-22.04.iso")
	gt.Value(t, entries[0].Size).Equal(int64(3_500_000_000))
	gt.Value(t, entries[0].Timestamp()).Equal(time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC))
	gt.Value(t, entries[1].Timestamp()).Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestClient_ListDirectory_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{
			name:       "Not found",
			status:     http.StatusNotFound,
			body:       `{"message":"Not Found"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Server error",
			status:     http.StatusBadGateway,
			body:       `{"message":"bad gateway"}`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "Malformed body",
			status:     http.StatusOK,
			body:       `[{"name":`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Path is a file, not a folder",
			status:     http.StatusOK,
			body:       `{"name":"OS","type":"file"}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := githubinfra.NewClient(server.URL + "/")
			gt.NoError(t, err)

			entries, err := client.ListDirectory(context.Background(), testSource())
			gt.Error(t, err)
			gt.Value(t, len(entries)).Equal(0)

			var fetchErr *model.FetchError
			gt.True(t, errors.As(err, &fetchErr))
			gt.Value(t, fetchErr.StatusCode).Equal(tt.wantStatus)
		})
	}
}

func TestClient_ListDirectory_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := githubinfra.NewClient(url)
	gt.NoError(t, err)

	_, err = client.ListDirectory(context.Background(), testSource())
	var fetchErr *model.FetchError
	gt.True(t, errors.As(err, &fetchErr))
	gt.Value(t, fetchErr.StatusCode).Equal(0)
}
