package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"tourism/internal/domain/models"
	"tourism/internal/jsnum"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method      string
	path        string
	contentType string
	body        string
}

func newServer(t *testing.T, handler http.HandlerFunc) (*Client, *[]recorded) {
	t.Helper()
	var mu sync.Mutex
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		calls = append(calls, recorded{r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(body)})
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL + "/"), &calls
}

func TestListDestinations(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"name":"Beach","city":"Goa","country":"India","price":"100"},{"id":2,"name":"Fort","city":"Jaipur","country":"India","price":45.5}]`)
	})

	list, err := c.ListDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.Price("100"), list[0].Price)
	assert.Equal(t, models.Price("45.5"), list[1].Price)
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodGet, (*calls)[0].method)
	assert.Equal(t, "/api/destinations", (*calls)[0].path)
}

func TestCreateTouristSendsJSON(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":3}`)
	})

	err := c.CreateTourist(context.Background(), models.TouristPayload{Name: "Ana", Nationality: "Brazil", Age: jsnum.ParseInt("31")})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api/tourists", got.path)
	assert.Equal(t, "application/json", got.contentType)

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.body), &body))
	assert.Equal(t, float64(31), body["age"])
}

func TestCreateVisitForwardsNaNAsNull(t *testing.T) {
	c, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	err := c.CreateVisit(context.Background(), models.VisitPayload{
		TouristID:     jsnum.ParseInt("abc"),
		DestinationID: jsnum.ParseInt("2"),
		Rating:        jsnum.ParseInt("5"),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tourist_id":null,"destination_id":2,"rating":5}`, (*calls)[0].body)
}

func TestNon2xxFails(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"name: is required"}`)
	})

	err := c.CreateDestination(context.Background(), models.DestinationPayload{Name: ""})
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestNonJSONBodyFails(t *testing.T) {
	c, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>oops</html>`)
	})

	_, err := c.ListTourists(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)

	err = c.CreateTourist(context.Background(), models.TouristPayload{})
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestNetworkErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url).ListTourists(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
}
