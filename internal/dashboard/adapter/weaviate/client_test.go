package weaviate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/corlin/wvsee/internal/dashboard/config"
	"github.com/corlin/wvsee/internal/dashboard/domain/model"
	apperrors "github.com/corlin/wvsee/internal/shared/errors"
	"github.com/corlin/wvsee/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.WeaviateConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	return NewClient(cfg, logger.NewLogger()), srv
}

func TestExecuteQuery_Success(t *testing.T) {
	var gotBody model.GraphQLRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/graphql", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"Get":{"Article":[{"title":"A"}]}}}`))
	}))

	resp, err := client.ExecuteQuery(context.Background(), "{ Get { Article { title } } }")
	require.NoError(t, err)
	assert.Equal(t, "{ Get { Article { title } } }", gotBody.Query)
	require.NotNil(t, resp.Data)
	require.Len(t, resp.Data.Get["Article"], 1)
	assert.Equal(t, "A", resp.Data.Get["Article"][0]["title"])
}

func TestExecuteQuery_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.ExecuteQuery(context.Background(), "{ Get { Article { title } } }")
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
}

func TestExecuteQuery_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	_, err := client.ExecuteQuery(context.Background(), "{ Get { Article { title } } }")
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
}

func TestExecuteQuery_GraphQLErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Cannot query field \"nope\""}]}`))
	}))

	_, err := client.ExecuteQuery(context.Background(), "{ Get { Article { nope } } }")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot query field")
}

func TestExecuteQuery_NetworkFailure(t *testing.T) {
	cfg := &config.WeaviateConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond}
	client := NewClient(cfg, logger.NewLogger())

	_, err := client.ExecuteQuery(context.Background(), "{ Get { Article { title } } }")
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
}

func TestGetSchema_Success(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1/schema", r.URL.Path)
		_, _ = w.Write([]byte(`{"classes":[
			{"class":"Article","description":"News articles","properties":[{"name":"title","dataType":["text"]}]},
			{"class":"Author","properties":[{"name":"name"}]}
		]}`))
	}))

	schema, err := client.GetSchema(context.Background())
	require.NoError(t, err)
	require.Len(t, schema.Classes, 2)
	assert.Equal(t, "Article", schema.Classes[0].Class)
	assert.Equal(t, "News articles", schema.Classes[0].Description)
	assert.Equal(t, "title", schema.Classes[0].Properties[0].Name)
	assert.Equal(t, "Author", schema.Classes[1].Class)
}

func TestGetSchema_MissingClassesField(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))

	schema, err := client.GetSchema(context.Background())
	require.NoError(t, err)
	assert.Empty(t, schema.Classes)
}

func TestGetSchema_HTTPErrorCarriesStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))

	_, err := client.GetSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDeleteClass_Success(t *testing.T) {
	var gotPath, gotMethod string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusOK)
	}))

	err := client.DeleteClass(context.Background(), "Article")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/schema/Article", gotPath)
}

func TestDeleteClass_HTTPError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))

	err := client.DeleteClass(context.Background(), "Article")
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
}

func TestReady(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/.well-known/ready" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	assert.NoError(t, client.Ready(context.Background()))
}

func TestReady_NotReady(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	err := client.Ready(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsInfrastructure(err))
}
