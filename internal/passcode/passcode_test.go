package passcode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PasscodeTestSuite struct {
	suite.Suite
}

func TestPasscodeTestSuite(t *testing.T) {
	suite.Run(t, new(PasscodeTestSuite))
}

func (s *PasscodeTestSuite) TestLocalGenerate() {
	source := NewLocal(&LocalConfig{Seed: 1})

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := source.Generate(context.Background())
		s.Require().NoError(err)
		s.Require().Len(code, Length)
		for _, r := range code {
			s.True(r >= 'a' && r <= 'z', "unexpected rune %q", r)
		}
		seen[code] = true
	}

	// A seeded source still produces distinct codes across calls
	s.Greater(len(seen), 1)
}

func (s *PasscodeTestSuite) TestLocalIsDeterministicPerSeed() {
	first := NewLocal(&LocalConfig{Seed: 7})
	second := NewLocal(&LocalConfig{Seed: 7})

	a, err := first.Generate(context.Background())
	s.Require().NoError(err)
	b, err := second.Generate(context.Background())
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *PasscodeTestSuite) TestRandomOrgGenerate() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		s.Require().NoError(err)

		var req map[string]any
		s.Require().NoError(json.Unmarshal(body, &req))
		s.Equal("generateStrings", req["method"])

		params, ok := req["params"].([]any)
		s.Require().True(ok)
		s.Require().Len(params, 4)
		s.Equal("test-api-key", params[0])
		s.Equal(float64(1), params[1])
		s.Equal(float64(Length), params[2])
		s.Equal("abcdefghijklmnopqrstuvwxyz", params[3])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","result":{"random":{"data":["qwerty"]}},"id":42}`))
	}))
	defer server.Close()

	source, err := NewRandomOrg(&RandomOrgConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})
	s.Require().NoError(err)

	code, err := source.Generate(context.Background())
	s.Require().NoError(err)
	s.Equal("qwerty", code)
}

func (s *PasscodeTestSuite) TestRandomOrgErrorResponse() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","error":{"code":202,"message":"API key stopped"},"id":42}`))
	}))
	defer server.Close()

	source, err := NewRandomOrg(&RandomOrgConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})
	s.Require().NoError(err)

	_, err = source.Generate(context.Background())
	s.Require().Error(err)
	s.Contains(err.Error(), "API key stopped")
}

func (s *PasscodeTestSuite) TestRandomOrgServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source, err := NewRandomOrg(&RandomOrgConfig{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
	})
	s.Require().NoError(err)

	_, err = source.Generate(context.Background())
	s.Require().Error(err)
}

func (s *PasscodeTestSuite) TestRandomOrgRequiresAPIKey() {
	_, err := NewRandomOrg(&RandomOrgConfig{})
	s.Require().Error(err)
}
